package get_catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

type CatalogService interface {
	ListServices(ctx context.Context) (*models.ServiceListResponse, error)
	ListProfessionals(ctx context.Context) (*models.ProfessionalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
