package manage_catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
	UpdateService(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error)
	DeleteService(ctx context.Context, id int64) error

	CreateProfessional(ctx context.Context, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error)
	UpdateProfessional(ctx context.Context, id int64, req *models.UpdateProfessionalRequest) (*models.ProfessionalResponse, error)
	DeleteProfessional(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
