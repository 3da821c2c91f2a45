package update_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-SalonService/internal/service/schedule"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректное расписание"
	msgInvalidTimeRange   = "время открытия должно быть раньше времени закрытия"
	msgInvalidInterval    = "недопустимый интервал слотов"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidTimeRange):
			h.logger.Warn("PUT /admin/schedule - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)
		case errors.Is(err, scheduleService.ErrInvalidInterval):
			h.logger.Warn("PUT /admin/schedule - Invalid interval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/schedule - Invalid schedule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)
		default:
			h.logger.Error("PUT /admin/schedule - Failed to update schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/schedule - Schedule updated")
	handlers.RespondJSON(w, http.StatusOK, result)
}
