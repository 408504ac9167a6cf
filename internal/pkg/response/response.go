// Package response escribe las respuestas JSON de la API, tanto de éxito como de error.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"entrenadores/internal/domain"
	apperror "entrenadores/internal/errors"
	"entrenadores/internal/pkg/logger"
)

// Responder centraliza la serialización y el registro de cada respuesta.
type Responder struct {
	Logger logger.Logger
	// ExposeInternals agrega la traza del error a las respuestas 5xx.
	// Solo debe activarse fuera de producción.
	ExposeInternals bool
}

// New crea un Responder.
func New(log logger.Logger, exposeInternals bool) *Responder {
	return &Responder{Logger: log, ExposeInternals: exposeInternals}
}

// JSON escribe data con el estado indicado.
func (rs *Responder) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		rs.Logger.Error("Fallo al codificar la respuesta JSON", err)
	}
}

// Error traduce err a su estado HTTP y escribe el cuerpo estándar de error.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	rs.ErrorWithStack(w, r, err, "")
}

// ErrorWithStack es como Error pero permite adjuntar una traza ya capturada (e.g., de un panic).
func (rs *Responder) ErrorWithStack(w http.ResponseWriter, r *http.Request, err error, stack string) {
	status, category, message := apperror.MapToHTTPStatus(err)

	fields := map[string]interface{}{
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     status,
		"category":   category,
		"request_id": middleware.GetReqID(r.Context()),
	}

	if status >= http.StatusInternalServerError {
		rs.Logger.With(fields).Error(fmt.Sprintf("Error de servidor: %s", category), err)
	} else {
		rs.Logger.Debug(fmt.Sprintf("Petición rechazada con estado %d", status), fields)
	}

	body := domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	}

	var appErr apperror.AppError
	if errors.As(err, &appErr) {
		if _, ok := appErr.(*apperror.ValidationError); ok {
			body.Errors = appErr.Details()
		} else if status < http.StatusInternalServerError {
			body.Details = appErr.Details()
		}
	}

	if rs.ExposeInternals && status >= http.StatusInternalServerError {
		if stack == "" {
			stack = err.Error()
		}
		body.Stack = stack
	}

	rs.JSON(w, status, body)
}
