package delete_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	reservations "github.com/m04kA/SMC-SalonService/internal/service/reservations"
)

const (
	msgReservationNotFound = "бронирование не найдено"
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

// Handle DELETE /api/v1/admin/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /admin/reservations/{id} - Reservation not found: id=%s", id)
			handlers.RespondNotFound(w, msgReservationNotFound)
		default:
			h.logger.Error("DELETE /admin/reservations/{id} - Failed to delete id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/reservations/{id} - Reservation deleted: id=%s", id)
	handlers.RespondNoContent(w)
}
