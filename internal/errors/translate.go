package errors

import (
	stderrors "errors"
	"strings"

	"github.com/lib/pq"
)

// Códigos SQLSTATE que la base de datos usa para comunicar reglas de negocio.
const (
	codigoUnicidad = "23505" // unique_violation
	codigoSinDatos = "P0002" // no_data_found
)

// MensajeDuplicado se usa cuando la violación de unicidad no trae una pista propia.
const MensajeDuplicado = "Ya existe un entrenador registrado con el mismo número de documento o correo."

// MensajeNoEncontrado se usa cuando el error no proviene del almacén y su texto no es apto para el cliente.
const MensajeNoEncontrado = "El recurso solicitado no existe."

var (
	marcadoresUnicidad  = []string{"duplicate key", "ya existe", "ya está registrado", "ya esta registrado", "duplicad"}
	marcadoresNoHallado = []string{"no encontrado", "no encontrada", "not found", "no existe"}
)

// Translate clasifica cualquier error devuelto por la capa de datos en un AppError.
// El orden de prioridad es: AppError existente, unicidad, no encontrado e interno.
func Translate(err error) AppError {
	if err == nil {
		return nil
	}

	var appErr AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var pqErr *pq.Error
	esPQ := stderrors.As(err, &pqErr)

	if esPQ && string(pqErr.Code) == codigoUnicidad {
		return conflicto(pqErr, err)
	}
	if esPQ && string(pqErr.Code) == codigoSinDatos {
		return NewNotFoundError(pqErr.Message)
	}

	texto := strings.ToLower(err.Error())
	if contieneAlguno(texto, marcadoresUnicidad) {
		return conflicto(pqErr, err)
	}
	if contieneAlguno(texto, marcadoresNoHallado) {
		if esPQ {
			return NewNotFoundError(pqErr.Message)
		}
		return NewNotFoundError(MensajeNoEncontrado)
	}

	return NewInternalError(MensajeErrorInterno, err)
}

// conflicto prioriza la pista (HINT) que la función almacenada adjunta a la violación.
// El DETAIL del driver (que incluye la clave duplicada) solo viaja como causa.
func conflicto(pqErr *pq.Error, causa error) AppError {
	if pqErr != nil && pqErr.Hint != "" {
		return NewConflictError(pqErr.Hint, causa)
	}
	return NewConflictError(MensajeDuplicado, causa)
}

// EsNoEncontrado indica si un mensaje del almacén describe un recurso inexistente.
func EsNoEncontrado(mensaje string) bool {
	return contieneAlguno(strings.ToLower(mensaje), marcadoresNoHallado)
}

func contieneAlguno(texto string, marcadores []string) bool {
	for _, m := range marcadores {
		if strings.Contains(texto, m) {
			return true
		}
	}
	return false
}
