package catalogo

import (
	"context"
	"net/http"

	"entrenadores/internal/domain"
	"entrenadores/internal/pkg/response"
)

// CatalogoService define el contrato que el Handler espera de la capa de servicio.
type CatalogoService interface {
	ListarFacultades(ctx context.Context) ([]domain.Facultad, error)
	ListarTiposDocumento(ctx context.Context) ([]domain.TipoDocumento, error)
}

type FacultadesResponse struct {
	Message    string            `json:"message" example:"Facultades obtenidas exitosamente."`
	Total      int               `json:"total" example:"1"`
	Facultades []domain.Facultad `json:"facultades"`
}

type TiposDocumentoResponse struct {
	Message        string                 `json:"message" example:"Tipos de documento obtenidos exitosamente."`
	Total          int                    `json:"total" example:"1"`
	TiposDocumento []domain.TipoDocumento `json:"tiposDocumento"`
}

// Handler sirve los catálogos de referencia.
type Handler struct {
	Service   CatalogoService
	Responder *response.Responder
}

func NewHandler(svc CatalogoService, rs *response.Responder) *Handler {
	return &Handler{Service: svc, Responder: rs}
}

// ListarFacultades godoc
// @Summary   Listar facultades
// @Tags      catalogos
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  FacultadesResponse
// @Failure   401  {object}  domain.MessageResponse
// @Router    /api/facultades [get]
func (h *Handler) ListarFacultades(w http.ResponseWriter, r *http.Request) {
	facultades, err := h.Service.ListarFacultades(r.Context())
	if err != nil {
		h.Responder.Error(w, r, err)
		return
	}
	h.Responder.JSON(w, http.StatusOK, FacultadesResponse{
		Message:    "Facultades obtenidas exitosamente.",
		Total:      len(facultades),
		Facultades: facultades,
	})
}

// ListarTiposDocumento godoc
// @Summary   Listar tipos de documento
// @Tags      catalogos
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  TiposDocumentoResponse
// @Failure   401  {object}  domain.MessageResponse
// @Router    /api/tipos-documento [get]
func (h *Handler) ListarTiposDocumento(w http.ResponseWriter, r *http.Request) {
	tipos, err := h.Service.ListarTiposDocumento(r.Context())
	if err != nil {
		h.Responder.Error(w, r, err)
		return
	}
	h.Responder.JSON(w, http.StatusOK, TiposDocumentoResponse{
		Message:        "Tipos de documento obtenidos exitosamente.",
		Total:          len(tipos),
		TiposDocumento: tipos,
	})
}
