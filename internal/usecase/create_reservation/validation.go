package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// validateRequest проверяет входные данные перед созданием бронирования
func validateRequest(req *Request, now time.Time) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: client phone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceName) == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ProfessionalName) == "" {
		return fmt.Errorf("%w: professional name is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := types.NewTimeStringFromString(req.StartTime.String()); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}

	// Дата не может быть в прошлом (сравниваем только календарные дни)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	reqDay := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location())
	if reqDay.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}

	return nil
}
