package schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
)

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.WeeklySchedule, error)
	Set(ctx context.Context, schedule *domain.WeeklySchedule) (*domain.WeeklySchedule, error)
}

var (
	_ ScheduleRepository = (*scheduleRepo.Repository)(nil)
	_ ScheduleRepository = (*scheduleRepo.MemoryRepository)(nil)
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
