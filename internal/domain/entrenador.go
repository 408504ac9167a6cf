package domain

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Entrenador es el modelo de lectura producido por la vista de entrenadores y facultades.
type Entrenador struct {
	ID                  string     `json:"idEntrenador" example:"6a1d0c9e-7b1f-4a8e-9a52-3f3e2f0b9d11"`
	Nombres             string     `json:"nombresEntrenador" example:"Laura"`
	Apellidos           string     `json:"apellidosEntrenador" example:"Gómez"`
	SiglaTipoDocumento  string     `json:"siglaTipoDocumento" example:"CC"`
	NumeroDocumento     string     `json:"numeroDocumento" example:"1012345678"`
	Correo              string     `json:"correo" example:"laura.gomez@uni.edu.co"`
	FechaFin            *time.Time `json:"fechaFin"`
	FacultadesAsignadas []string   `json:"facultadesAsignadas"`
	Estado              string     `json:"estado" example:"Activo"`
}

// RegistroEntrenador es el payload de alta de un entrenador.
// FechaFin vacía significa que la base de datos aplica su valor por defecto.
type RegistroEntrenador struct {
	SiglaTipoDocumento string   `json:"siglaTipoDocumento" validate:"required,min=1,max=5" example:"CC"`
	Nombres            string   `json:"nombres" validate:"required,min=1,max=200" example:"Laura"`
	Apellidos          string   `json:"apellidos" validate:"required,min=1,max=200" example:"Gómez"`
	NumeroDocumento    string   `json:"numeroDocumento" validate:"required,number,min=5,max=20" example:"1012345678"`
	Correo             string   `json:"correo" validate:"required,email" example:"laura.gomez@uni.edu.co"`
	FacultadNombres    []string `json:"facultadNombres" validate:"required,min=1,dive,notblank" example:"Ingeniería"`
	FechaFin           string   `json:"fechaFin,omitempty" validate:"omitempty,fechaiso,fechanopasada" example:"2026-12-31"`
}

// ActualizacionEntrenador es el payload parcial de modificación.
// Un campo ausente no se envía a la base de datos. Un null explícito en
// NuevaFechaFin o una lista vacía/null en NuevosNombresFacultades limpian el valor.
type ActualizacionEntrenador struct {
	NuevosNombres           Campo[string]   `json:"nuevosNombres" swaggertype:"string"`
	NuevosApellidos         Campo[string]   `json:"nuevosApellidos" swaggertype:"string"`
	NuevoCorreo             Campo[string]   `json:"nuevoCorreo" swaggertype:"string"`
	NuevaFechaFin           Campo[string]   `json:"nuevaFechaFin" swaggertype:"string"`
	NuevosNombresFacultades Campo[[]string] `json:"nuevosNombresFacultades" swaggertype:"array,string"`
}

// LimpiaFechaFin indica que el cliente pidió eliminar la fecha de fin.
func (a ActualizacionEntrenador) LimpiaFechaFin() bool {
	return a.NuevaFechaFin.Presente && a.NuevaFechaFin.Nulo
}

// LimpiaFacultades indica que el cliente pidió dejar al entrenador sin facultades.
func (a ActualizacionEntrenador) LimpiaFacultades() bool {
	f := a.NuevosNombresFacultades
	return f.Presente && (f.Nulo || len(f.Valor) == 0)
}

// FiltroEntrenadores restringe el listado. Un NombreFacultad vacío no filtra.
type FiltroEntrenadores struct {
	NombreFacultad string `json:"nombreFacultad,omitempty"`
}

// ResultadoOperacion es la fila devuelta por las funciones de registro y modificación.
type ResultadoOperacion struct {
	Mensaje      string
	EntrenadorID string
	Detalles     json.RawMessage
}

// ResultadoDesactivacion es la fila devuelta por la función de desactivación.
type ResultadoDesactivacion struct {
	Mensaje      string
	EntrenadorID string
	Exito        bool
}

// EntrenadorRepository define el contrato de acceso a las funciones y vistas de entrenadores.
// Cada método ejecuta exactamente una llamada a la base de datos. Los métodos que
// devuelven un puntero entregan (nil, nil) si la función no produjo filas.
type EntrenadorRepository interface {
	Registrar(ctx context.Context, registro RegistroEntrenador) (*ResultadoOperacion, error)
	Listar(ctx context.Context, filtro FiltroEntrenadores) ([]Entrenador, error)
	Actualizar(ctx context.Context, id string, cambios ActualizacionEntrenador) (*ResultadoOperacion, error)
	Desactivar(ctx context.Context, id string) (*ResultadoDesactivacion, error)
}

// Formatos de fecha aceptados en los payloads.
var formatosFecha = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// ErrFechaInvalida se devuelve cuando una fecha no está en formato ISO-8601.
var ErrFechaInvalida = errors.New("fecha con formato inválido")

// ParseFecha interpreta una fecha ISO-8601 (solo fecha o fecha y hora).
func ParseFecha(valor string) (time.Time, error) {
	for _, layout := range formatosFecha {
		if t, err := time.Parse(layout, valor); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrFechaInvalida
}
