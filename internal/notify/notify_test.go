package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func sampleReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:               "b7e3c1a0-0000-0000-0000-000000000001",
		ClientName:       "Ana Silva",
		ClientPhone:      "+351 912 345 678",
		ServiceName:      "Corte",
		ProfessionalName: "Maria",
		Date:             time.Date(2025, 10, 15, 0, 0, 0, 0, time.Local),
		StartTime:        "10:00",
		Status:           domain.StatusConfirmed,
	}
}

func TestWhatsAppLink(t *testing.T) {
	link, err := WhatsAppLink(sampleReservation())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/351912345678?text="), link)
	assert.Contains(t, link, "Ana")
	// В query не должно быть сырых пробелов
	assert.NotContains(t, link, " ")
}

func TestWhatsAppLink_EmptyPhone(t *testing.T) {
	r := sampleReservation()
	r.ClientPhone = " - "

	_, err := WhatsAppLink(r)
	assert.ErrorIs(t, err, ErrEmptyPhone)
}

func TestICSEvent(t *testing.T) {
	now := time.Date(2025, 10, 10, 9, 30, 0, 0, time.UTC)
	ics, err := ICSEvent(sampleReservation(), 60, now)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, ics, "DTSTART:20251015T100000")
	assert.Contains(t, ics, "DTEND:20251015T110000")
	assert.Contains(t, ics, "UID:b7e3c1a0-0000-0000-0000-000000000001@smc-salonservice")
	assert.Contains(t, ics, "SUMMARY:Corte - Ana Silva (Maria)")
	assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))
}

func TestICSEvent_DefaultDuration(t *testing.T) {
	now := time.Date(2025, 10, 10, 9, 30, 0, 0, time.UTC)
	ics, err := ICSEvent(sampleReservation(), 0, now)

	require.NoError(t, err)
	assert.Contains(t, ics, "DTEND:20251015T110000")
}

func TestICSEvent_MalformedStartTime(t *testing.T) {
	r := sampleReservation()
	r.StartTime = "25:99"

	_, err := ICSEvent(r, 60, time.Now())
	assert.Error(t, err)
}
