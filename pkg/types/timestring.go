package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Layout формат времени слота в БД и API
const Layout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректной строке времени
	ErrInvalidTimeString = errors.New("types: invalid time string, expected HH:MM")
)

// TimeString represents a wall-clock time of day as an "HH:MM" string.
// It is the canonical slot time representation across storage, API and
// availability computation.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(Layout))
}

// NewTimeStringFromString парсит строку "HH:MM" и валидирует её
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(t), nil
}

// String returns the underlying "HH:MM" value.
func (ts TimeString) String() string {
	return string(ts)
}

// Hour returns the hour component (0..23).
func (ts TimeString) Hour() (int, error) {
	t, err := ts.parse()
	if err != nil {
		return 0, err
	}
	return t.Hour(), nil
}

// IsBefore reports whether ts is strictly earlier in the day than other.
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter reports whether ts is strictly later in the day than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	a, errA := ts.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes returns a new TimeString shifted forward by the given number
// of minutes. The result wraps within the same day boundary semantics of
// time.Time (no date component is kept).
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := ts.parse()
	if err != nil {
		return "", err
	}
	return NewTimeString(t.Add(time.Duration(minutes) * time.Minute)), nil
}

// At combines the time of day with the given date in the date's location.
func (ts TimeString) At(date time.Time) (time.Time, error) {
	t, err := ts.parse()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

func (ts TimeString) parse() (time.Time, error) {
	t, err := time.Parse(Layout, string(ts))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t, nil
}

// Value implements driver.Valuer.
func (ts TimeString) Value() (driver.Value, error) {
	if _, err := ts.parse(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as
// "HH:MM:SS" strings or time.Time, both are normalized to "HH:MM".
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		return ts.scanString(string(v))
	case string:
		return ts.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported source %T", ErrInvalidTimeString, src)
	}
}

func (ts *TimeString) scanString(s string) error {
	// TIME колонки приходят как "15:04:05"
	if t, err := time.Parse("15:04:05", s); err == nil {
		*ts = NewTimeString(t)
		return nil
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (ts TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(ts))
}

// UnmarshalJSON implements json.Unmarshaler with validation.
func (ts *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
