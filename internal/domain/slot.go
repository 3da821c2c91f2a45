package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// DayPeriod groups slots for the booking UI
type DayPeriod string

const (
	PeriodMorning   DayPeriod = "morning"   // before 12:00
	PeriodAfternoon DayPeriod = "afternoon" // 12:00 - 17:59
	PeriodEvening   DayPeriod = "evening"   // 18:00 onwards
)

// PeriodForHour classifies an hour of day into a display period
func PeriodForHour(hour int) DayPeriod {
	switch {
	case hour < 12:
		return PeriodMorning
	case hour < 18:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// CandidateSlot represents a bookable start time for one date.
// Candidate slots are derived per request and never persisted.
type CandidateSlot struct {
	StartTime types.TimeString
	Period    DayPeriod
}
