package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

// Service сервис каталога услуг и мастеров
type Service struct {
	serviceRepo      ServiceRepository
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	professionalRepo ProfessionalRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo:      serviceRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// Услуги

// ListServices возвращает все услуги каталога
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// CreateService добавляет услугу в каталог
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: creating service name=%q", req.Name)

	if err := validateServiceFields(req.Name, req.DurationMinutes); err != nil {
		s.logger.Warn("CreateService: invalid input: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	})
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%d", created.ID)
	return models.FromDomainService(created), nil
}

// UpdateService обновляет услугу каталога
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: updating service id=%d", id)

	if err := validateServiceFields(req.Name, req.DurationMinutes); err != nil {
		s.logger.Warn("UpdateService: invalid input for service id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.serviceRepo.Update(ctx, &domain.Service{
		ID:              id,
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: successfully updated service id=%d", id)
	return models.FromDomainService(updated), nil
}

// DeleteService удаляет услугу из каталога
func (s *Service) DeleteService(ctx context.Context, id int64) error {
	s.logger.Info("DeleteService: deleting service id=%d", id)

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for service id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: successfully deleted service id=%d", id)
	return nil
}

// Мастера

// ListProfessionals возвращает всех мастеров каталога
func (s *Service) ListProfessionals(ctx context.Context) (*models.ProfessionalListResponse, error) {
	professionals, err := s.professionalRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListProfessionals: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProfessionals - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfessionalList(professionals), nil
}

// CreateProfessional добавляет мастера в каталог
func (s *Service) CreateProfessional(ctx context.Context, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("CreateProfessional: creating professional name=%q", req.Name)

	if err := validateProfessionalFields(req.Name, req.Role); err != nil {
		s.logger.Warn("CreateProfessional: invalid input: %v", err)
		return nil, err
	}

	created, err := s.professionalRepo.Create(ctx, &domain.Professional{
		Name:         strings.TrimSpace(req.Name),
		Role:         strings.TrimSpace(req.Role),
		ServiceNames: req.ServiceNames,
		Color:        req.Color,
	})
	if err != nil {
		s.logger.Error("CreateProfessional: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateProfessional - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateProfessional: successfully created professional id=%d", created.ID)
	return models.FromDomainProfessional(created), nil
}

// UpdateProfessional обновляет мастера каталога
func (s *Service) UpdateProfessional(ctx context.Context, id int64, req *models.UpdateProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("UpdateProfessional: updating professional id=%d", id)

	if err := validateProfessionalFields(req.Name, req.Role); err != nil {
		s.logger.Warn("UpdateProfessional: invalid input for professional id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.professionalRepo.Update(ctx, &domain.Professional{
		ID:           id,
		Name:         strings.TrimSpace(req.Name),
		Role:         strings.TrimSpace(req.Role),
		ServiceNames: req.ServiceNames,
		Color:        req.Color,
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			s.logger.Warn("UpdateProfessional: professional id=%d not found", id)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("UpdateProfessional: repository error for professional id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateProfessional - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfessional: successfully updated professional id=%d", id)
	return models.FromDomainProfessional(updated), nil
}

// DeleteProfessional удаляет мастера из каталога
func (s *Service) DeleteProfessional(ctx context.Context, id int64) error {
	s.logger.Info("DeleteProfessional: deleting professional id=%d", id)

	if err := s.professionalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			s.logger.Warn("DeleteProfessional: professional id=%d not found", id)
			return ErrProfessionalNotFound
		}
		s.logger.Error("DeleteProfessional: repository error for professional id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteProfessional - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteProfessional: successfully deleted professional id=%d", id)
	return nil
}

// Вспомогательные функции

func validateServiceFields(name string, durationMinutes int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	return nil
}

func validateProfessionalFields(name, role string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: professional name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(role) == "" {
		return fmt.Errorf("%w: professional role is required", ErrInvalidInput)
	}
	return nil
}
