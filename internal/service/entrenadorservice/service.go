package entrenadorservice

import (
	"context"
	"net/http"
	"strings"

	"entrenadores/internal/domain"
	apperror "entrenadores/internal/errors"
	"entrenadores/internal/pkg/logger"
)

// Mensajes usados cuando la base de datos no entrega resultado.
const (
	MsgSinResultadoRegistro     = "No se pudo registrar al entrenador: la base de datos no devolvió resultado."
	MsgSinResultadoModificacion = "No se pudo modificar al entrenador: la base de datos no devolvió resultado."
	MsgSinResultadoDesactivar   = "No se pudo desactivar al entrenador: la base de datos no devolvió resultado."
	MsgDesactivacionFallida     = "No se pudo desactivar al entrenador."
)

// Recorder recibe los eventos de negocio que se exponen como métricas.
type Recorder interface {
	IncrementEntrenadoresRegistrados()
}

type nopRecorder struct{}

func (nopRecorder) IncrementEntrenadoresRegistrados() {}

// Service orquesta los casos de uso de administración de entrenadores.
type Service struct {
	repo    domain.EntrenadorRepository
	logger  logger.Logger
	metrics Recorder
}

// NewService crea el servicio. rec puede ser nil.
func NewService(repo domain.EntrenadorRepository, log logger.Logger, rec Recorder) *Service {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Service{repo: repo, logger: log, metrics: rec}
}

// Registrar da de alta un entrenador con sus facultades.
func (s *Service) Registrar(ctx context.Context, registro domain.RegistroEntrenador) (*domain.ResultadoOperacion, error) {
	res, err := s.repo.Registrar(ctx, registro)
	if err != nil {
		return nil, s.traducir("registrar", err, map[string]interface{}{"numero_documento": registro.NumeroDocumento})
	}
	if res == nil {
		return nil, apperror.NewInternalError(MsgSinResultadoRegistro, nil)
	}

	s.metrics.IncrementEntrenadoresRegistrados()
	s.logger.Info("Entrenador registrado.", map[string]interface{}{"entrenador_id": res.EntrenadorID})
	return res, nil
}

// Listar devuelve los entrenadores, opcionalmente filtrados por facultad.
func (s *Service) Listar(ctx context.Context, filtro domain.FiltroEntrenadores) ([]domain.Entrenador, error) {
	filtro.NombreFacultad = strings.TrimSpace(filtro.NombreFacultad)

	entrenadores, err := s.repo.Listar(ctx, filtro)
	if err != nil {
		return nil, s.traducir("listar", err, map[string]interface{}{"nombre_facultad": filtro.NombreFacultad})
	}
	return entrenadores, nil
}

// Actualizar aplica una modificación parcial. Sin campos presentes la llamada
// se realiza igual y la base de datos responde que no hubo cambios.
func (s *Service) Actualizar(ctx context.Context, id string, cambios domain.ActualizacionEntrenador) (*domain.ResultadoOperacion, error) {
	res, err := s.repo.Actualizar(ctx, id, cambios)
	if err != nil {
		return nil, s.traducir("actualizar", err, map[string]interface{}{"entrenador_id": id})
	}
	if res == nil {
		return nil, apperror.NewInternalError(MsgSinResultadoModificacion, nil)
	}
	return res, nil
}

// Desactivar marca al entrenador como inactivo. Un resultado sin éxito se
// clasifica como 404 si el entrenador no existe y como 400 en otro caso.
func (s *Service) Desactivar(ctx context.Context, id string) (*domain.ResultadoDesactivacion, error) {
	res, err := s.repo.Desactivar(ctx, id)
	if err != nil {
		return nil, s.traducir("desactivar", err, map[string]interface{}{"entrenador_id": id})
	}
	if res == nil {
		return nil, apperror.NewInternalError(MsgSinResultadoDesactivar, nil)
	}

	if !res.Exito {
		if apperror.EsNoEncontrado(res.Mensaje) {
			return nil, apperror.NewNotFoundError(res.Mensaje)
		}
		msg := res.Mensaje
		if msg == "" {
			msg = MsgDesactivacionFallida
		}
		return nil, apperror.NewBadRequestError(msg, map[string]interface{}{
			"entrenadorId": id,
			"exito":        false,
		})
	}
	return res, nil
}

func (s *Service) traducir(operacion string, err error, fields map[string]interface{}) apperror.AppError {
	appErr := apperror.Translate(err)
	fields["operacion"] = operacion
	switch {
	case appErr.HTTPStatus() >= 500:
		s.logger.With(fields).Error("Fallo en operación de entrenadores.", err)
	case appErr.HTTPStatus() == http.StatusConflict:
		fields["causa"] = err.Error()
		s.logger.Warn("Violación de unicidad rechazada por la base de datos.", fields)
	}
	return appErr
}
