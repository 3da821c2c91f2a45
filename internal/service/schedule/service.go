package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Service сервис управления недельным расписанием салона
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Get возвращает текущее недельное расписание.
// Если конфигурация ещё не сохранялась, отдаются дефолтные часы
func (s *Service) Get(ctx context.Context) (*models.WeeklyScheduleResponse, error) {
	schedule, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("Get: no schedule config stored, returning defaults")
			return models.FromDomainSchedule(domain.DefaultWeeklySchedule()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// Update заменяет недельное расписание целиком
func (s *Service) Update(ctx context.Context, req *models.UpdateScheduleRequest) (*models.WeeklyScheduleResponse, error) {
	s.logger.Info("Update: updating schedule, %d days, interval=%d", len(req.Days), req.SlotIntervalMinutes)

	schedule, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateSchedule(schedule); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.scheduleRepo.Set(ctx, schedule)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated schedule")
	return models.FromDomainSchedule(saved), nil
}

// validateSchedule проверяет интервал слотов и часы открытых дней
func validateSchedule(schedule *domain.WeeklySchedule) error {
	if schedule.SlotIntervalMinutes < domain.MinSlotIntervalMinutes ||
		schedule.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return fmt.Errorf("%w: %d minutes (allowed %d-%d)", ErrInvalidInterval,
			schedule.SlotIntervalMinutes, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}

	for weekday, day := range schedule.Days {
		if !day.IsOpen {
			continue
		}
		if _, err := types.NewTimeStringFromString(day.StartTime.String()); err != nil {
			return fmt.Errorf("%w: %s start time: %v", ErrInvalidInput, weekday, err)
		}
		if _, err := types.NewTimeStringFromString(day.EndTime.String()); err != nil {
			return fmt.Errorf("%w: %s end time: %v", ErrInvalidInput, weekday, err)
		}
		if !day.StartTime.IsBefore(day.EndTime) {
			return fmt.Errorf("%w: %s: %s >= %s", ErrInvalidTimeRange, weekday, day.StartTime, day.EndTime)
		}
	}

	return nil
}
