package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createReservation "github.com/m04kA/SMC-SalonService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ClientName     string  `json:"clientName"`
	ClientPhone    string  `json:"clientPhone"`
	ClientEmail    *string `json:"clientEmail,omitempty"`
	Service        string  `json:"service"`
	Professional   string  `json:"professional"`
	Date           string  `json:"date"`      // "2025-10-15"
	StartTime      string  `json:"startTime"` // "10:00"
	WantsReminders bool    `json:"wantsReminders,omitempty"`
	FirstVisit     bool    `json:"firstVisit,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             string  `json:"id"`
	ClientName     string  `json:"clientName"`
	ClientPhone    string  `json:"clientPhone"`
	ClientEmail    *string `json:"clientEmail,omitempty"`
	Service        string  `json:"service"`
	Professional   string  `json:"professional"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	Status         string  `json:"status"`
	WantsReminders bool    `json:"wantsReminders"`
	FirstVisit     bool    `json:"firstVisit"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		ClientName:       r.ClientName,
		ClientPhone:      r.ClientPhone,
		ClientEmail:      r.ClientEmail,
		ServiceName:      r.Service,
		ProfessionalName: r.Professional,
		Date:             date,
		StartTime:        startTime,
		WantsReminders:   r.WantsReminders,
		FirstVisit:       r.FirstVisit,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	r := resp.Reservation
	return &ReservationResponse{
		ID:             r.ID,
		ClientName:     r.ClientName,
		ClientPhone:    r.ClientPhone,
		ClientEmail:    r.ClientEmail,
		Service:        r.ServiceName,
		Professional:   r.ProfessionalName,
		Date:           r.Date.Format(domain.DateFormat),
		StartTime:      r.StartTime.String(),
		Status:         string(r.Status),
		WantsReminders: r.WantsReminders,
		FirstVisit:     r.FirstVisit,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}
