package get_availability

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	Date         time.Time // Дата, на которую запрашиваются слоты (без времени)
	Professional *string   // Имя мастера (опционально; nil - занятость по всему салону)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date         time.Time
	Professional *string
	// Closed отличает закрытый день от дня без свободных слотов
	Closed bool
	Slots  []Slot
}

// Slot модель доступного временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота, например "10:00"
	Period    domain.DayPeriod // Утро / день / вечер для группировки в UI
}
