package auth

import (
	"context"
	"net/http"

	"entrenadores/internal/domain"
	"entrenadores/internal/pkg/logger"
	"entrenadores/internal/pkg/response"
	"entrenadores/internal/validation"
)

// AuthService define el contrato que el Handler espera de la capa de servicio.
type AuthService interface {
	AutenticarAdmin(ctx context.Context, cred domain.CredencialesAdmin) (domain.ResultadoAutenticacion, error)
	AutenticarEntrenador(ctx context.Context, cred domain.CredencialesEntrenador) (domain.ResultadoAutenticacion, error)
}

// Handler agrupa los endpoints de inicio de sesión.
type Handler struct {
	Service   AuthService
	Validator *validation.Validator
	Responder *response.Responder
	Logger    logger.Logger
}

// NewHandler crea el handler de autenticación.
func NewHandler(svc AuthService, val *validation.Validator, rs *response.Responder, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: val, Responder: rs, Logger: log}
}

// LoginAdmin godoc
// @Summary      Inicio de sesión de administrador
// @Description  Autentica a un administrador activo por número de documento y devuelve un JWT.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credenciales  body      domain.CredencialesAdmin  true  "Credenciales"
// @Success      200           {object}  domain.ResultadoAutenticacion
// @Failure      400           {object}  domain.ErrorResponse
// @Failure      401           {object}  domain.ResultadoAutenticacion
// @Failure      429           {object}  domain.ErrorResponse
// @Router       /api/login/admin [post]
func (h *Handler) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var cred domain.CredencialesAdmin
	tipoInvalido, err := response.DecodeJSON(r, &cred)
	if err != nil {
		h.Responder.Error(w, r, err)
		return
	}
	if err := h.Validator.ValidarCredencialesAdmin(&cred, tipoInvalido...); err != nil {
		h.Responder.Error(w, r, err)
		return
	}

	res, err := h.Service.AutenticarAdmin(r.Context(), cred)
	h.responder(w, r, res, err)
}

// LoginEntrenador godoc
// @Summary      Inicio de sesión de entrenador
// @Description  Autentica a un entrenador activo por correo y número de documento y devuelve un JWT.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credenciales  body      domain.CredencialesEntrenador  true  "Credenciales"
// @Success      200           {object}  domain.ResultadoAutenticacion
// @Failure      400           {object}  domain.ErrorResponse
// @Failure      401           {object}  domain.ResultadoAutenticacion
// @Failure      429           {object}  domain.ErrorResponse
// @Router       /api/login/entrenador [post]
func (h *Handler) LoginEntrenador(w http.ResponseWriter, r *http.Request) {
	var cred domain.CredencialesEntrenador
	tipoInvalido, err := response.DecodeJSON(r, &cred)
	if err != nil {
		h.Responder.Error(w, r, err)
		return
	}
	if err := h.Validator.ValidarCredencialesEntrenador(&cred, tipoInvalido...); err != nil {
		h.Responder.Error(w, r, err)
		return
	}

	res, err := h.Service.AutenticarEntrenador(r.Context(), cred)
	h.responder(w, r, res, err)
}

func (h *Handler) responder(w http.ResponseWriter, r *http.Request, res domain.ResultadoAutenticacion, err error) {
	if err != nil {
		h.Responder.Error(w, r, err)
		return
	}
	if !res.Success {
		h.Logger.Warn("Inicio de sesión fallido.", map[string]interface{}{"path": r.URL.Path})
		h.Responder.JSON(w, http.StatusUnauthorized, domain.ResultadoAutenticacion{Success: false, Message: res.Message})
		return
	}
	h.Responder.JSON(w, http.StatusOK, res)
}
