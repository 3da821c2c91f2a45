package reservations

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
	Delete(ctx context.Context, id string) error
}

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.WeeklySchedule, error)
}

var (
	_ ReservationRepository = (*reservationRepo.Repository)(nil)
	_ ReservationRepository = (*reservationRepo.MemoryRepository)(nil)
	_ ScheduleRepository    = (*scheduleRepo.Repository)(nil)
	_ ScheduleRepository    = (*scheduleRepo.MemoryRepository)(nil)
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
