package list_reservations

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	reservations "github.com/m04kA/SMC-SalonService/internal/service/reservations"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
)

const (
	msgInvalidFrom     = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo       = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidStatus   = "некорректный статус бронирования"
	msgInvalidDeclined = "некорректный параметр includeDeclined, ожидается true или false"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reservations?from=&to=&status=&professional=&includeDeclined=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListReservationsRequest{}
	query := r.URL.Query()

	if fromStr := query.Get("from"); fromStr != "" {
		from, err := time.ParseInLocation(domain.DateFormat, fromStr, time.Local)
		if err != nil {
			h.logger.Warn("GET /admin/reservations - Invalid from=%q: %v", fromStr, err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.From = &from
	}

	if toStr := query.Get("to"); toStr != "" {
		to, err := time.ParseInLocation(domain.DateFormat, toStr, time.Local)
		if err != nil {
			h.logger.Warn("GET /admin/reservations - Invalid to=%q: %v", toStr, err)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		req.To = &to
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if professional := query.Get("professional"); professional != "" {
		req.Professional = &professional
	}

	if includeDeclined := query.Get("includeDeclined"); includeDeclined != "" {
		parsed, err := strconv.ParseBool(includeDeclined)
		if err != nil {
			h.logger.Warn("GET /admin/reservations - Invalid includeDeclined=%q: %v", includeDeclined, err)
			handlers.RespondBadRequest(w, msgInvalidDeclined)
			return
		}
		req.IncludeDeclined = parsed
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /admin/reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("GET /admin/reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations - Returned %d reservations", len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
