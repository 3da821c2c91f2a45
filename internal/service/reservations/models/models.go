package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest запрос на получение бронирований с фильтрацией
type ListReservationsRequest struct {
	From            *time.Time `json:"from,omitempty"`            // Начало периода (опционально)
	To              *time.Time `json:"to,omitempty"`              // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	Professional    *string    `json:"professional,omitempty"`    // Фильтр по мастеру (опционально)
	IncludeDeclined bool       `json:"includeDeclined,omitempty"` // Включить отклонённые заявки
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		From:            r.From,
		To:              r.To,
		Professional:    r.Professional,
		IncludeDeclined: r.IncludeDeclined,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID               string  `json:"id"`
	ClientName       string  `json:"clientName"`
	ClientPhone      string  `json:"clientPhone"`
	ClientEmail      *string `json:"clientEmail,omitempty"`
	ServiceName      string  `json:"serviceName"`
	ProfessionalName string  `json:"professionalName"`
	Date             string  `json:"date"`      // "2025-10-15"
	StartTime        string  `json:"startTime"` // "10:00"
	Status           string  `json:"status"`
	WantsReminders   bool    `json:"wantsReminders"`
	FirstVisit       bool    `json:"firstVisit"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// ConfirmResponse результат подтверждения заявки
type ConfirmResponse struct {
	Reservation  *ReservationResponse `json:"reservation"`
	WhatsAppLink *string              `json:"whatsappLink,omitempty"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:               r.ID,
		ClientName:       r.ClientName,
		ClientPhone:      r.ClientPhone,
		ClientEmail:      r.ClientEmail,
		ServiceName:      r.ServiceName,
		ProfessionalName: r.ProfessionalName,
		Date:             r.Date.Format(domain.DateFormat),
		StartTime:        r.StartTime.String(),
		Status:           string(r.Status),
		WantsReminders:   r.WantsReminders,
		FirstVisit:       r.FirstVisit,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		if r := FromDomainReservation(reservation); r != nil {
			resp.Reservations = append(resp.Reservations, *r)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	if !domain.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return domain.ReservationStatus(status), nil
}
