package get_availability

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailability "github.com/m04kA/SMC-SalonService/internal/usecase/get_availability"
)

// SlotResponse один доступный слот
type SlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	Period    string `json:"period"`    // morning | afternoon | evening
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date         string         `json:"date"` // "2025-10-15"
	Professional *string        `json:"professional,omitempty"`
	Closed       bool           `json:"closed"`
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		Professional: resp.Professional,
		Closed:       resp.Closed,
		Slots:        make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			StartTime: slot.StartTime.String(),
			Period:    string(slot.Period),
		})
	}

	return out
}
