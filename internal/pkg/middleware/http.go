package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	apperror "entrenadores/internal/errors"
	"entrenadores/internal/pkg/logger"
	"entrenadores/internal/pkg/response"
)

// RequestLogger registra una línea por petición con método, ruta, estado y duración.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"remote_addr": r.RemoteAddr,
				"request_id":  chimw.GetReqID(r.Context()),
			}

			switch {
			case status >= http.StatusInternalServerError:
				log.Warn("Petición HTTP con error de servidor", fields)
			default:
				log.Info("Petición HTTP", fields)
			}
		})
	}
}

// Recoverer convierte un panic en una respuesta 500 con el formato estándar.
// Fuera de producción el cuerpo incluye la traza.
func Recoverer(rs *response.Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err := apperror.NewInternalError(apperror.MensajeErrorInterno, fmt.Errorf("panic: %v", rec))
				rs.ErrorWithStack(w, r, err, string(debug.Stack()))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
