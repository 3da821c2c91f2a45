package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request входные данные для создания бронирования
type Request struct {
	ClientName       string
	ClientPhone      string
	ClientEmail      *string
	ServiceName      string
	ProfessionalName string
	Date             time.Time
	StartTime        types.TimeString
	WantsReminders   bool
	FirstVisit       bool
}

// Response созданное бронирование
type Response struct {
	Reservation *domain.Reservation
}
