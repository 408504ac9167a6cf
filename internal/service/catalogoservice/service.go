package catalogoservice

import (
	"context"

	"entrenadores/internal/domain"
	apperror "entrenadores/internal/errors"
	"entrenadores/internal/pkg/logger"
)

// Service expone los catálogos de referencia a cualquier usuario autenticado.
type Service struct {
	repo   domain.CatalogoRepository
	logger logger.Logger
}

func NewService(repo domain.CatalogoRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

func (s *Service) ListarFacultades(ctx context.Context) ([]domain.Facultad, error) {
	facultades, err := s.repo.ListarFacultades(ctx)
	if err != nil {
		return nil, s.traducir("facultades", err)
	}
	return facultades, nil
}

func (s *Service) ListarTiposDocumento(ctx context.Context) ([]domain.TipoDocumento, error) {
	tipos, err := s.repo.ListarTiposDocumento(ctx)
	if err != nil {
		return nil, s.traducir("tipos_documento", err)
	}
	return tipos, nil
}

func (s *Service) traducir(catalogo string, err error) apperror.AppError {
	appErr := apperror.Translate(err)
	if appErr.HTTPStatus() >= 500 {
		s.logger.With(map[string]interface{}{"catalogo": catalogo}).Error("Fallo al consultar catálogo.", err)
	}
	return appErr
}
