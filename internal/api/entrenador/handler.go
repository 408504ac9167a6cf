package entrenador

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"entrenadores/internal/domain"
	"entrenadores/internal/pkg/logger"
	"entrenadores/internal/pkg/middleware"
	"entrenadores/internal/pkg/response"
	"entrenadores/internal/validation"
)

// ParamEntrenadorID es el nombre del parámetro de ruta con el ID del entrenador.
const ParamEntrenadorID = "entrenadorID"

// Mensajes por defecto cuando la base de datos no entrega uno propio.
const (
	MsgRegistrado  = "Entrenador registrado exitosamente."
	MsgListado     = "Lista de entrenadores obtenida exitosamente."
	MsgActualizado = "Información del entrenador actualizada."
	MsgDesactivado = "Entrenador desactivado exitosamente."
)

// EntrenadorService define el contrato que el Handler espera de la capa de servicio.
type EntrenadorService interface {
	Registrar(ctx context.Context, registro domain.RegistroEntrenador) (*domain.ResultadoOperacion, error)
	Listar(ctx context.Context, filtro domain.FiltroEntrenadores) ([]domain.Entrenador, error)
	Actualizar(ctx context.Context, id string, cambios domain.ActualizacionEntrenador) (*domain.ResultadoOperacion, error)
	Desactivar(ctx context.Context, id string) (*domain.ResultadoDesactivacion, error)
}

// OperacionResponse es el cuerpo de registro y modificación.
type OperacionResponse struct {
	Message      string          `json:"message" example:"Entrenador registrado exitosamente."`
	EntrenadorID string          `json:"entrenadorId" example:"6a1d0c9e-7b1f-4a8e-9a52-3f3e2f0b9d11"`
	Details      json.RawMessage `json:"details" swaggertype:"object"`
}

// ListadoResponse es el cuerpo del listado de entrenadores.
type ListadoResponse struct {
	Message          string                    `json:"message" example:"Lista de entrenadores obtenida exitosamente."`
	Total            int                       `json:"total" example:"1"`
	FiltrosAplicados domain.FiltroEntrenadores `json:"filtrosAplicados"`
	Entrenadores     []domain.Entrenador       `json:"entrenadores"`
}

// DesactivacionResponse es el cuerpo de la desactivación.
type DesactivacionResponse struct {
	Message      string `json:"message" example:"Entrenador desactivado exitosamente."`
	EntrenadorID string `json:"entrenadorId" example:"6a1d0c9e-7b1f-4a8e-9a52-3f3e2f0b9d11"`
	Exito        bool   `json:"exito" example:"true"`
}

// Handler agrupa los endpoints de administración de entrenadores.
type Handler struct {
	Service   EntrenadorService
	Validator *validation.Validator
	Responder *response.Responder
	Logger    logger.Logger
}

// NewHandler crea el handler de entrenadores.
func NewHandler(svc EntrenadorService, val *validation.Validator, rs *response.Responder, log logger.Logger) *Handler {
	return &Handler{Service: svc, Validator: val, Responder: rs, Logger: log}
}

// Registrar godoc
// @Summary      Registrar entrenador
// @Tags         entrenadores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entrenador  body      domain.RegistroEntrenador  true  "Datos del entrenador"
// @Success      201         {object}  OperacionResponse
// @Failure      400         {object}  domain.ErrorResponse
// @Failure      401         {object}  domain.MessageResponse
// @Failure      403         {object}  domain.MessageResponse
// @Failure      409         {object}  domain.ErrorResponse
// @Router       /api/admin/entrenadores [post]
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	var registro domain.RegistroEntrenador
	tipoInvalido, err := response.DecodeJSON(r, &registro)
	if err != nil {
		h.Responder.Error(w, r, err)
		return
	}
	if err := h.Validator.ValidarRegistro(&registro, tipoInvalido...); err != nil {
		h.Responder.Error(w, r, err)
		return
	}

	h.logOperacion(r, "registrar", map[string]interface{}{"numero_documento": registro.NumeroDocumento})

	res, err := h.Service.Registrar(r.Context(), registro)
	if err != nil {
		h.Responder.Error(w, r, err)
		return
	}

	h.Responder.JSON(w, http.StatusCreated, OperacionResponse{
		Message:      mensajeO(res.Mensaje, MsgRegistrado),
		EntrenadorID: res.EntrenadorID,
		Details:      res.Detalles,
	})
}

// Listar godoc
// @Summary      Listar entrenadores
// @Description  Devuelve los entrenadores ordenados por apellidos y nombres, opcionalmente filtrados por facultad.
// @Tags         entrenadores
// @Produce      json
// @Security     BearerAuth
// @Param        nombreFacultad  query     string  false  "Nombre exacto de la facultad"
// @Success      200             {object}  ListadoResponse
// @Failure      401             {object}  domain.MessageResponse
// @Failure      403             {object}  domain.MessageResponse
// @Router       /api/admin/entrenadores [get]
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	filtro := domain.FiltroEntrenadores{NombreFacultad: r.URL.Query().Get("nombreFacultad")}

	entrenadores, err := h.Service.Listar(r.Context(), filtro)
	if err != nil {
		h.Responder.Error(w, r, err)
		return
	}

	h.Responder.JSON(w, http.StatusOK, ListadoResponse{
		Message:          MsgListado,
		Total:            len(entrenadores),
		FiltrosAplicados: filtro,
		Entrenadores:     entrenadores,
	})
}

// Actualizar godoc
// @Summary      Modificar entrenador
// @Description  Modificación parcial. Los campos ausentes no cambian; null en nuevaFechaFin o una lista vacía de facultades limpian el valor.
// @Tags         entrenadores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entrenadorID  path      string                          true  "ID del entrenador (UUID)"
// @Param        cambios       body      domain.ActualizacionEntrenador  true  "Campos a modificar"
// @Success      200           {object}  OperacionResponse
// @Failure      400           {object}  domain.ErrorResponse
// @Failure      404           {object}  domain.ErrorResponse
// @Failure      409           {object}  domain.ErrorResponse
// @Router       /api/admin/entrenadores/{entrenadorID} [put]
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, ParamEntrenadorID)
	if err := h.Validator.ValidarID(ParamEntrenadorID, id); err != nil {
		h.Responder.Error(w, r, err)
		return
	}

	var cambios domain.ActualizacionEntrenador
	tipoInvalido, err := response.DecodeJSON(r, &cambios)
	if err != nil {
		h.Responder.Error(w, r, err)
		return
	}
	if err := h.Validator.ValidarActualizacion(&cambios, tipoInvalido...); err != nil {
		h.Responder.Error(w, r, err)
		return
	}

	h.logOperacion(r, "actualizar", map[string]interface{}{"entrenador_id": id})

	res, err := h.Service.Actualizar(r.Context(), id, cambios)
	if err != nil {
		h.Responder.Error(w, r, err)
		return
	}

	h.Responder.JSON(w, http.StatusOK, OperacionResponse{
		Message:      mensajeO(res.Mensaje, MsgActualizado),
		EntrenadorID: mensajeO(res.EntrenadorID, id),
		Details:      res.Detalles,
	})
}

// Desactivar godoc
// @Summary      Desactivar entrenador
// @Tags         entrenadores
// @Produce      json
// @Security     BearerAuth
// @Param        entrenadorID  path      string  true  "ID del entrenador (UUID)"
// @Success      200           {object}  DesactivacionResponse
// @Failure      400           {object}  domain.ErrorResponse
// @Failure      404           {object}  domain.ErrorResponse
// @Router       /api/admin/entrenadores/{entrenadorID}/desactivar [put]
func (h *Handler) Desactivar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, ParamEntrenadorID)
	if err := h.Validator.ValidarID(ParamEntrenadorID, id); err != nil {
		h.Responder.Error(w, r, err)
		return
	}

	h.logOperacion(r, "desactivar", map[string]interface{}{"entrenador_id": id})

	res, err := h.Service.Desactivar(r.Context(), id)
	if err != nil {
		h.Responder.Error(w, r, err)
		return
	}

	h.Responder.JSON(w, http.StatusOK, DesactivacionResponse{
		Message:      mensajeO(res.Mensaje, MsgDesactivado),
		EntrenadorID: mensajeO(res.EntrenadorID, id),
		Exito:        res.Exito,
	})
}

// logOperacion registra quién ejecuta la operación administrativa.
func (h *Handler) logOperacion(r *http.Request, operacion string, fields map[string]interface{}) {
	fields["operacion"] = operacion
	if claims, ok := middleware.GetUserClaimsFromContext(r.Context()); ok {
		fields["user_id"] = claims.UserID
	}
	h.Logger.Info("Operación de administración de entrenadores.", fields)
}

func mensajeO(valor, porDefecto string) string {
	if valor == "" {
		return porDefecto
	}
	return valor
}
