package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	apperror "entrenadores/internal/errors"
	"entrenadores/internal/pkg/cache"
	"entrenadores/internal/pkg/logger"
	"entrenadores/internal/pkg/response"
)

// MsgLimiteExcedido es el mensaje de la respuesta 429.
const MsgLimiteExcedido = "Demasiados intentos. Intente nuevamente más tarde."

// RateLimiter limita las peticiones por IP con una ventana fija guardada en el cache.
// Si el cache falla la petición continúa: el limitador no debe tumbar el inicio de sesión.
func RateLimiter(client cache.Client, prefix string, limit int, period time.Duration, rs *response.Responder, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rate-limit:" + prefix + ":" + clientIP(r)

			ctx, cancel := context.WithTimeout(r.Context(), time.Second)
			defer cancel()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Limitador de peticiones no disponible, se permite la petición.", map[string]interface{}{
					"key":   key,
					"error": err.Error(),
				})
				next.ServeHTTP(w, r)
				return
			}

			// El primer incremento abre la ventana.
			if count == 1 {
				if err := client.Expire(ctx, key, period); err != nil {
					log.Warn("No fue posible fijar la expiración del limitador.", map[string]interface{}{"key": key, "error": err.Error()})
				}
			}

			remaining := limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > int64(limit) {
				retry := period
				if ttl, err := client.TTL(ctx, key); err == nil && ttl > 0 {
					retry = ttl
				}
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
				rs.Error(w, r, apperror.NewTooManyRequestsError(MsgLimiteExcedido))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP usa RemoteAddr, que chi/middleware.RealIP ya reescribe detrás de un proxy.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
