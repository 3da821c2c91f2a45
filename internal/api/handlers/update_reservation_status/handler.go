package update_reservation_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	reservations "github.com/m04kA/SMC-SalonService/internal/service/reservations"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidStatus       = "недопустимый целевой статус, ожидается confirmed или declined"
	msgReservationNotFound = "бронирование не найдено"
	msgInvalidTransition   = "заявка уже обработана, смена статуса невозможна"
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

// Handle PATCH /api/v1/admin/reservations/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var payload interface{}
	var err error

	switch domain.ReservationStatus(req.Status) {
	case domain.StatusConfirmed:
		payload, err = h.service.Confirm(r.Context(), id)
	case domain.StatusDeclined:
		payload, err = h.service.Decline(r.Context(), id)
	default:
		h.logger.Warn("PATCH /admin/reservations/{id}/status - Invalid target status=%q for id=%s", req.Status, id)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/status - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/reservations/{id}/status - Invalid transition for id=%s: %v", id, err)
			handlers.RespondConflict(w, msgInvalidTransition)
		default:
			h.logger.Error("PATCH /admin/reservations/{id}/status - Failed to update id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id}/status - Reservation id=%s moved to status=%s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, payload)
}
