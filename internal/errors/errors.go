package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError es la interfaz central de todos los errores tipados de la API.
// Permite que el Handler acceda a la categoría, el estado HTTP y el mensaje
// visible para el cliente sin conocer el tipo concreto.
type AppError interface {
	Error() string        // Implementa la interfaz error estándar
	Category() string     // Categoría del error (e.g., "VALIDATION_ERROR", "NOT_FOUND")
	HTTPStatus() int      // Código HTTP que debe devolver el Handler
	Message() string      // Mensaje seguro para el cliente
	Details() interface{} // Información adicional opcional (campos inválidos, detalles de la BD)
	Unwrap() error        // Error subyacente, si existe
}

// FieldError describe un campo que no superó las reglas de validación.
type FieldError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// --- Errores de entrada ---

// ValidationError agrupa todas las fallas de validación de una petición.
type ValidationError struct {
	Msg    string
	Fields []FieldError
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Error de validación: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Message() string  { return e.Msg }
func (e *ValidationError) Unwrap() error    { return nil }
func (e *ValidationError) Details() interface{} {
	if len(e.Fields) == 0 {
		return nil
	}
	return e.Fields
}

// NewValidationError crea un error de validación con los campos inválidos.
func NewValidationError(msg string, fields ...FieldError) AppError {
	return &ValidationError{Msg: msg, Fields: fields}
}

// BadRequestError representa una petición bien formada que el almacén rechazó
// (e.g., desactivar un entrenador que ya está inactivo).
type BadRequestError struct {
	Msg    string
	Detail interface{}
}

func (e *BadRequestError) Error() string    { return fmt.Sprintf("Petición inválida: %s", e.Msg) }
func (e *BadRequestError) Category() string { return "INVALID_REQUEST" }
func (e *BadRequestError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *BadRequestError) Message() string  { return e.Msg }
func (e *BadRequestError) Unwrap() error    { return nil }
func (e *BadRequestError) Details() interface{} {
	return e.Detail
}

// NewBadRequestError crea un error de petición inválida; detail puede ser nil.
func NewBadRequestError(msg string, detail interface{}) AppError {
	return &BadRequestError{Msg: msg, Detail: detail}
}

// --- Errores de autenticación y autorización ---

// UnauthorizedError representa credenciales ausentes o inválidas.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string        { return fmt.Sprintf("No autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string     { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int      { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Message() string      { return e.Msg }
func (e *UnauthorizedError) Details() interface{} { return nil }
func (e *UnauthorizedError) Unwrap() error        { return nil }

// NewUnauthorizedError crea un error 401.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError representa una identidad válida sin permisos suficientes.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string        { return fmt.Sprintf("Acceso prohibido: %s", e.Msg) }
func (e *ForbiddenError) Category() string     { return "FORBIDDEN" }
func (e *ForbiddenError) HTTPStatus() int      { return http.StatusForbidden } // 403
func (e *ForbiddenError) Message() string      { return e.Msg }
func (e *ForbiddenError) Details() interface{} { return nil }
func (e *ForbiddenError) Unwrap() error        { return nil }

// NewForbiddenError crea un error 403.
func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// TooManyRequestsError indica que el cliente superó el límite de peticiones.
type TooManyRequestsError struct {
	Msg string
}

func (e *TooManyRequestsError) Error() string        { return fmt.Sprintf("Límite excedido: %s", e.Msg) }
func (e *TooManyRequestsError) Category() string     { return "RATE_LIMITED" }
func (e *TooManyRequestsError) HTTPStatus() int      { return http.StatusTooManyRequests } // 429
func (e *TooManyRequestsError) Message() string      { return e.Msg }
func (e *TooManyRequestsError) Details() interface{} { return nil }
func (e *TooManyRequestsError) Unwrap() error        { return nil }

// NewTooManyRequestsError crea un error 429.
func NewTooManyRequestsError(msg string) AppError {
	return &TooManyRequestsError{Msg: msg}
}

// --- Errores de dominio ---

// NotFoundError representa la ausencia del recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string        { return fmt.Sprintf("Recurso no encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string     { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int      { return http.StatusNotFound } // 404
func (e *NotFoundError) Message() string      { return e.Msg }
func (e *NotFoundError) Details() interface{} { return nil }
func (e *NotFoundError) Unwrap() error        { return nil }

// NewNotFoundError crea un error de recurso no encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa una violación de unicidad (documento o correo duplicado).
// El error del driver se conserva como causa para los logs y nunca se expone al cliente.
type ConflictError struct {
	Msg string
	Err error
}

func (e *ConflictError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Conflicto: %s (causa: %v)", e.Msg, e.Err)
	}
	return fmt.Sprintf("Conflicto: %s", e.Msg)
}
func (e *ConflictError) Category() string     { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int      { return http.StatusConflict } // 409
func (e *ConflictError) Message() string      { return e.Msg }
func (e *ConflictError) Details() interface{} { return nil }
func (e *ConflictError) Unwrap() error        { return e.Err }

// NewConflictError crea un error de conflicto; cause puede ser nil.
func NewConflictError(msg string, cause error) AppError {
	return &ConflictError{Msg: msg, Err: cause}
}

// --- Errores de infraestructura ---

// InternalError representa fallas inesperadas del servidor o de la base de datos.
// El error original nunca se expone al cliente.
type InternalError struct {
	Msg string
	Err error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Error interno: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("Error interno: %s", e.Msg)
}
func (e *InternalError) Category() string     { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int      { return http.StatusInternalServerError } // 500
func (e *InternalError) Message() string      { return e.Msg }
func (e *InternalError) Details() interface{} { return nil }
func (e *InternalError) Unwrap() error        { return e.Err }

// NewInternalError crea un error de servidor encapsulando la causa.
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// --- Helper para el Handler ---

// MapToHTTPStatus traduce un error a (estado HTTP, categoría, mensaje para el cliente).
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Message()
	}

	// Error no tipado: se trata como interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", MensajeErrorInterno
}

// MensajeErrorInterno es el único texto que recibe el cliente ante un 500.
const MensajeErrorInterno = "Ocurrió un error inesperado en el servidor."
