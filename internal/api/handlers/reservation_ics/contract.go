package reservation_ics

import (
	"context"
	"time"
)

type ReservationsService interface {
	ICS(ctx context.Context, id string, now time.Time) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
