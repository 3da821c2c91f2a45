package notify

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrEmptyPhone возвращается, когда у клиента не указан телефон
	ErrEmptyPhone = errors.New("client phone is empty")
)

// WhatsAppLink собирает deep-link для отправки клиенту подтверждения в WhatsApp.
// Из телефона выкидываются все символы кроме цифр, текст кодируется в query
func WhatsAppLink(reservation *domain.Reservation) (string, error) {
	digits := phoneDigits(reservation.ClientPhone)
	if digits == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyPhone, reservation.ClientPhone)
	}

	text := fmt.Sprintf("Olá %s! A sua marcação de %s com %s no dia %s às %s está confirmada. Até já!",
		reservation.ClientName,
		reservation.ServiceName,
		reservation.ProfessionalName,
		reservation.Date.Format("02/01/2006"),
		reservation.StartTime,
	)

	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(text), nil
}

// phoneDigits оставляет в номере только цифры
func phoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
