package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           *string `json:"price,omitempty"`
}

// UpdateServiceRequest запрос на обновление услуги
type UpdateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           *string `json:"price,omitempty"`
}

// CreateProfessionalRequest запрос на создание мастера
type CreateProfessionalRequest struct {
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	ServiceNames []string `json:"serviceNames"`
	Color        *string  `json:"color,omitempty"`
}

// UpdateProfessionalRequest запрос на обновление мастера
type UpdateProfessionalRequest struct {
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	ServiceNames []string `json:"serviceNames"`
	Color        *string  `json:"color,omitempty"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           *string `json:"price,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// ProfessionalResponse ответ с данными мастера
type ProfessionalResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	ServiceNames []string `json:"serviceNames"`
	Color        *string  `json:"color,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProfessionalListResponse ответ со списком мастеров
type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, service := range services {
		if s := FromDomainService(service); s != nil {
			resp.Services = append(resp.Services, *s)
		}
	}
	return resp
}

// FromDomainProfessional конвертирует domain модель в DTO
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	if p == nil {
		return nil
	}

	serviceNames := p.ServiceNames
	if serviceNames == nil {
		serviceNames = []string{}
	}

	return &ProfessionalResponse{
		ID:           p.ID,
		Name:         p.Name,
		Role:         p.Role,
		ServiceNames: serviceNames,
		Color:        p.Color,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// FromDomainProfessionalList конвертирует список domain моделей в DTO
func FromDomainProfessionalList(professionals []*domain.Professional) *ProfessionalListResponse {
	resp := &ProfessionalListResponse{
		Professionals: make([]ProfessionalResponse, 0, len(professionals)),
	}
	for _, professional := range professionals {
		if p := FromDomainProfessional(professional); p != nil {
			resp.Professionals = append(resp.Professionals, *p)
		}
	}
	return resp
}
