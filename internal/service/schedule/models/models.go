package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при неизвестном ключе дня недели
	ErrInvalidWeekday = errors.New("invalid weekday key")
)

// DayScheduleDTO рабочие часы одного дня недели
type DayScheduleDTO struct {
	IsOpen    bool   `json:"isOpen"`
	StartTime string `json:"startTime,omitempty"` // "09:00"
	EndTime   string `json:"endTime,omitempty"`   // "18:00"
}

// WeeklyScheduleResponse недельное расписание салона.
// Дни ключуются индексом дня недели: "0" - воскресенье ... "6" - суббота
type WeeklyScheduleResponse struct {
	Days                map[string]DayScheduleDTO `json:"days"`
	SlotIntervalMinutes int                       `json:"slotIntervalMinutes"`
	UpdatedAt           *time.Time                `json:"updatedAt,omitempty"`
}

// UpdateScheduleRequest запрос на замену недельного расписания
type UpdateScheduleRequest struct {
	Days                map[string]DayScheduleDTO `json:"days"`
	SlotIntervalMinutes int                       `json:"slotIntervalMinutes"`
}

// ToDomain конвертирует запрос в domain модель
func (r *UpdateScheduleRequest) ToDomain() (*domain.WeeklySchedule, error) {
	schedule := &domain.WeeklySchedule{
		Days:                make(map[time.Weekday]domain.DaySchedule, len(r.Days)),
		SlotIntervalMinutes: r.SlotIntervalMinutes,
	}

	for key, day := range r.Days {
		weekday, err := parseWeekdayKey(key)
		if err != nil {
			return nil, err
		}
		schedule.Days[weekday] = domain.DaySchedule{
			IsOpen:    day.IsOpen,
			StartTime: types.TimeString(day.StartTime),
			EndTime:   types.TimeString(day.EndTime),
		}
	}

	return schedule, nil
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s *domain.WeeklySchedule) *WeeklyScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &WeeklyScheduleResponse{
		Days:                make(map[string]DayScheduleDTO, len(s.Days)),
		SlotIntervalMinutes: s.SlotIntervalMinutes,
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	for weekday, day := range s.Days {
		dto := DayScheduleDTO{IsOpen: day.IsOpen}
		if day.IsOpen {
			dto.StartTime = day.StartTime.String()
			dto.EndTime = day.EndTime.String()
		}
		resp.Days[fmt.Sprintf("%d", int(weekday))] = dto
	}

	return resp
}

func parseWeekdayKey(key string) (time.Weekday, error) {
	if len(key) != 1 || key[0] < '0' || key[0] > '6' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, key)
	}
	return time.Weekday(key[0] - '0'), nil
}
