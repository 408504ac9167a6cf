package authservice

import (
	"context"
	"strings"

	"entrenadores/internal/domain"
	apperror "entrenadores/internal/errors"
	"entrenadores/internal/pkg/logger"
)

// Mensajes de inicio de sesión fallido.
const (
	MsgCredencialesAdmin      = "Credenciales inválidas o administrador inactivo."
	MsgCredencialesEntrenador = "Credenciales inválidas o entrenador inactivo."
	MsgFalloToken             = "No se pudo generar el token de autenticación."
)

// TokenGenerator es el contrato de la capa de tokens (internal/pkg/token).
type TokenGenerator interface {
	GenerateToken(userID string, userRole string) (string, error)
}

// LoginRecorder cuenta los intentos de inicio de sesión por rol y resultado.
type LoginRecorder interface {
	ObserveLogin(role string, success bool)
}

type nopRecorder struct{}

func (nopRecorder) ObserveLogin(string, bool) {}

// AuthService autentica administradores y entrenadores activos y emite su token.
type AuthService struct {
	repo     domain.AuthRepository
	tokenSvc TokenGenerator
	logger   logger.Logger
	metrics  LoginRecorder
}

// NewService crea el servicio de autenticación. rec puede ser nil.
func NewService(repo domain.AuthRepository, tokenSvc TokenGenerator, log logger.Logger, rec LoginRecorder) *AuthService {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &AuthService{repo: repo, tokenSvc: tokenSvc, logger: log, metrics: rec}
}

// AutenticarAdmin busca un administrador activo por número de documento.
// Sin coincidencia devuelve un resultado con Success en false y error nil.
func (s *AuthService) AutenticarAdmin(ctx context.Context, cred domain.CredencialesAdmin) (domain.ResultadoAutenticacion, error) {
	usuario, err := s.repo.FindActiveAdmin(ctx, strings.TrimSpace(cred.NumeroDocumento))
	if err != nil {
		s.metrics.ObserveLogin(string(domain.RoleAdmin), false)
		return domain.ResultadoAutenticacion{}, s.traducir(domain.RoleAdmin, err)
	}
	return s.emitir(usuario, domain.RoleAdmin, MsgCredencialesAdmin)
}

// AutenticarEntrenador busca un entrenador activo por correo y número de documento.
func (s *AuthService) AutenticarEntrenador(ctx context.Context, cred domain.CredencialesEntrenador) (domain.ResultadoAutenticacion, error) {
	correo := strings.ToLower(strings.TrimSpace(cred.Correo))
	usuario, err := s.repo.FindActiveEntrenador(ctx, correo, strings.TrimSpace(cred.NumeroDocumento))
	if err != nil {
		s.metrics.ObserveLogin(string(domain.RoleEntrenador), false)
		return domain.ResultadoAutenticacion{}, s.traducir(domain.RoleEntrenador, err)
	}
	return s.emitir(usuario, domain.RoleEntrenador, MsgCredencialesEntrenador)
}

func (s *AuthService) emitir(usuario *domain.Usuario, role domain.UserRole, msgFallo string) (domain.ResultadoAutenticacion, error) {
	if usuario == nil {
		s.metrics.ObserveLogin(string(role), false)
		s.logger.Debug("Inicio de sesión rechazado.", map[string]interface{}{"role": role})
		return domain.ResultadoAutenticacion{Success: false, Message: msgFallo}, nil
	}

	tokenString, err := s.tokenSvc.GenerateToken(usuario.ID, string(role))
	if err != nil {
		s.metrics.ObserveLogin(string(role), false)
		return domain.ResultadoAutenticacion{}, apperror.NewInternalError(MsgFalloToken, err)
	}

	s.metrics.ObserveLogin(string(role), true)
	s.logger.Info("Inicio de sesión exitoso.", map[string]interface{}{"user_id": usuario.ID, "role": role})
	return domain.ResultadoAutenticacion{
		Success: true,
		User:    usuario,
		Role:    role,
		Token:   tokenString,
	}, nil
}

func (s *AuthService) traducir(role domain.UserRole, err error) apperror.AppError {
	appErr := apperror.Translate(err)
	if appErr.HTTPStatus() >= 500 {
		s.logger.With(map[string]interface{}{"role": role}).Error("Fallo al consultar credenciales.", err)
	}
	return appErr
}
