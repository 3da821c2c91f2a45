package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleServices GET /api/v1/catalog/services
func (h *Handler) HandleServices(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog/services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleProfessionals GET /api/v1/catalog/professionals
func (h *Handler) HandleProfessionals(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListProfessionals(r.Context())
	if err != nil {
		h.logger.Error("GET /catalog/professionals - Failed to list professionals: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
