package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, id int64) error
}

// ProfessionalRepository интерфейс репозитория мастеров
type ProfessionalRepository interface {
	Create(ctx context.Context, professional *domain.Professional) (*domain.Professional, error)
	List(ctx context.Context) ([]*domain.Professional, error)
	Update(ctx context.Context, professional *domain.Professional) (*domain.Professional, error)
	Delete(ctx context.Context, id int64) error
}

var (
	_ ServiceRepository      = (*catalogRepo.ServiceRepository)(nil)
	_ ServiceRepository      = (*catalogRepo.MemoryServiceRepository)(nil)
	_ ProfessionalRepository = (*catalogRepo.ProfessionalRepository)(nil)
	_ ProfessionalRepository = (*catalogRepo.MemoryProfessionalRepository)(nil)
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
