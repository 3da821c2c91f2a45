package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ReservationStatus represents the status of a client reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusDeclined  ReservationStatus = "declined"
)

// Reservation represents a client booking request in the system.
// Service and professional are referenced by name only: the catalog owns them.
type Reservation struct {
	ID               string // opaque UUID, assigned at creation
	ClientName       string
	ClientPhone      string
	ClientEmail      *string
	ServiceName      string
	ProfessionalName string
	Date             time.Time // calendar day of the appointment
	StartTime        types.TimeString
	Status           ReservationStatus

	WantsReminders bool
	FirstVisit     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the reservation still awaits admin review
func (r *Reservation) IsPending() bool {
	return r.Status == StatusPending
}

// IsTerminal returns true if no further status transition is modeled
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusConfirmed || r.Status == StatusDeclined
}

// Occupies returns true if the reservation blocks its time slot.
// Declined reservations release the slot back to availability.
func (r *Reservation) Occupies() bool {
	return r.Status != StatusDeclined
}

// CanTransitionTo reports whether the status machine allows moving to target.
// Only pending -> confirmed and pending -> declined are modeled;
// both confirmed and declined are terminal.
func (r *Reservation) CanTransitionTo(target ReservationStatus) bool {
	if r.Status != StatusPending {
		return false
	}
	return target == StatusConfirmed || target == StatusDeclined
}

// StartsAt combines the reservation date and start time into one instant
func (r *Reservation) StartsAt() (time.Time, error) {
	return r.StartTime.At(r.Date)
}

// ReservationsFilter фильтр для выборки бронирований админ-панелью
type ReservationsFilter struct {
	From            *time.Time         // Начало периода (опционально)
	To              *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	Professional    *string            // Фильтр по мастеру (опционально)
	IncludeDeclined bool               // Включать ли отклонённые заявки
}
