package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const icsTimeLayout = "20060102T150405"

// ICSEvent собирает текст iCalendar-события для бронирования.
// Временные метки пишутся во floating-формате (без TZ), как их
// интерпретирует календарь на стороне салона
func ICSEvent(reservation *domain.Reservation, durationMinutes int, now time.Time) (string, error) {
	start, err := reservation.StartTime.At(reservation.Date)
	if err != nil {
		return "", fmt.Errorf("invalid reservation start time: %w", err)
	}
	if durationMinutes <= 0 {
		durationMinutes = domain.DefaultSlotIntervalMinutes
	}
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	summary := fmt.Sprintf("%s - %s (%s)", reservation.ServiceName, reservation.ClientName, reservation.ProfessionalName)
	description := fmt.Sprintf("Cliente: %s\\nTelefone: %s\\nServiço: %s\\nProfissional: %s",
		reservation.ClientName,
		reservation.ClientPhone,
		reservation.ServiceName,
		reservation.ProfessionalName,
	)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//SMC-SalonService//Reservations//PT",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + reservation.ID + "@smc-salonservice",
		"DTSTAMP:" + now.UTC().Format(icsTimeLayout) + "Z",
		"DTSTART:" + start.Format(icsTimeLayout),
		"DTEND:" + end.Format(icsTimeLayout),
		"SUMMARY:" + escapeICSText(summary),
		"DESCRIPTION:" + description,
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	// iCalendar требует CRLF в качестве разделителя строк
	return strings.Join(lines, "\r\n") + "\r\n", nil
}

// escapeICSText экранирует спецсимволы текстовых полей по RFC 5545
func escapeICSText(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}
