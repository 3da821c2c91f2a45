package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// Default schedule values, used when no configuration record exists
const (
	DefaultOpenTime            types.TimeString = "09:00"
	DefaultCloseTime           types.TimeString = "18:00"
	DefaultSlotIntervalMinutes                  = 60

	// DefaultLeadTimeMinutes минимальный интервал между "сейчас" и началом
	// бронируемого слота. Исторически зашитые 2 часа исходного виджета.
	DefaultLeadTimeMinutes = 120
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 480 // 8 hours

	MaxClientNameLength = 120
	MaxPhoneLength      = 32
	MaxEmailLength      = 254
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusDeclined,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s string) bool {
	for _, status := range ValidStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}
