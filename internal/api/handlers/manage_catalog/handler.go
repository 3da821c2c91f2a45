package manage_catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidID            = "некорректный идентификатор"
	msgInvalidInput         = "некорректные данные"
	msgServiceNotFound      = "услуга не найдена"
	msgProfessionalNotFound = "мастер не найден"
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

// Услуги

// CreateService POST /api/v1/admin/catalog/services
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/catalog/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/catalog/services", err)
		return
	}

	h.logger.Info("POST /admin/catalog/services - Service created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateService PUT /api/v1/admin/catalog/services/{id}
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "PUT /admin/catalog/services/{id}")
	if !ok {
		return
	}

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/catalog/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateService(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /admin/catalog/services/{id}", err)
		return
	}

	h.logger.Info("PUT /admin/catalog/services/{id} - Service updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteService DELETE /api/v1/admin/catalog/services/{id}
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "DELETE /admin/catalog/services/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteService(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /admin/catalog/services/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/catalog/services/{id} - Service deleted: id=%d", id)
	handlers.RespondNoContent(w)
}

// Мастера

// CreateProfessional POST /api/v1/admin/catalog/professionals
func (h *Handler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/catalog/professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateProfessional(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/catalog/professionals", err)
		return
	}

	h.logger.Info("POST /admin/catalog/professionals - Professional created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// UpdateProfessional PUT /api/v1/admin/catalog/professionals/{id}
func (h *Handler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "PUT /admin/catalog/professionals/{id}")
	if !ok {
		return
	}

	var req models.UpdateProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/catalog/professionals/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateProfessional(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /admin/catalog/professionals/{id}", err)
		return
	}

	h.logger.Info("PUT /admin/catalog/professionals/{id} - Professional updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteProfessional DELETE /api/v1/admin/catalog/professionals/{id}
func (h *Handler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "DELETE /admin/catalog/professionals/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteProfessional(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /admin/catalog/professionals/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/catalog/professionals/{id} - Professional deleted: id=%d", id)
	handlers.RespondNoContent(w)
}

// Вспомогательные методы

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid id: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, catalogService.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: %v", op, err)
		handlers.RespondNotFound(w, msgServiceNotFound)
	case errors.Is(err, catalogService.ErrProfessionalNotFound):
		h.logger.Warn("%s - Professional not found: %v", op, err)
		handlers.RespondNotFound(w, msgProfessionalNotFound)
	case errors.Is(err, catalogService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s - Unexpected error: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
