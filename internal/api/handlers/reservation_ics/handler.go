package reservation_ics

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	reservations "github.com/m04kA/SMC-SalonService/internal/service/reservations"
)

const (
	msgReservationNotFound     = "бронирование не найдено"
	msgReservationNotConfirmed = "бронирование не подтверждено"
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

// Handle GET /api/v1/admin/reservations/{id}/ics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ics, err := h.service.ICS(r.Context(), id, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /admin/reservations/{id}/ics - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, reservations.ErrReservationNotConfirmed):
			h.logger.Warn("GET /admin/reservations/{id}/ics - Reservation not confirmed: id=%s", id)
			handlers.RespondConflict(w, msgReservationNotConfirmed)
		default:
			h.logger.Error("GET /admin/reservations/{id}/ics - Failed to build event for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations/{id}/ics - Event generated for id=%s", id)
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="reservation.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ics))
}
