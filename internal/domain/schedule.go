package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// DaySchedule represents opening hours for a single weekday
type DaySchedule struct {
	IsOpen    bool
	StartTime types.TimeString
	EndTime   types.TimeString
}

// WeeklySchedule represents the salon's weekly opening configuration.
// A single record, read on every booking-flow render and mutated only
// by the administrator. No versioning or history is kept.
type WeeklySchedule struct {
	Days                map[time.Weekday]DaySchedule
	SlotIntervalMinutes int
	UpdatedAt           time.Time
}

// ForDate returns the day schedule for the date's weekday.
// The second return value is false when the weekday is not configured,
// which callers treat the same as a closed day.
func (s *WeeklySchedule) ForDate(date time.Time) (DaySchedule, bool) {
	day, ok := s.Days[date.Weekday()]
	return day, ok
}

// IsConsistent reports whether every open day has a well-formed range.
// Overnight wraparound is not supported: start must be strictly before end.
func (s *WeeklySchedule) IsConsistent() bool {
	if s.SlotIntervalMinutes <= 0 {
		return false
	}
	for _, day := range s.Days {
		if !day.IsOpen {
			continue
		}
		if _, err := types.NewTimeStringFromString(day.StartTime.String()); err != nil {
			return false
		}
		if _, err := types.NewTimeStringFromString(day.EndTime.String()); err != nil {
			return false
		}
		if !day.StartTime.IsBefore(day.EndTime) {
			return false
		}
	}
	return true
}

// DefaultWeeklySchedule returns the schedule used when no configuration
// record exists yet: open 09:00-18:00 every day except Sunday, 60-minute slots.
func DefaultWeeklySchedule() *WeeklySchedule {
	days := make(map[time.Weekday]DaySchedule, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wd == time.Sunday {
			days[wd] = DaySchedule{IsOpen: false}
			continue
		}
		days[wd] = DaySchedule{
			IsOpen:    true,
			StartTime: DefaultOpenTime,
			EndTime:   DefaultCloseTime,
		}
	}
	return &WeeklySchedule{
		Days:                days,
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
	}
}
