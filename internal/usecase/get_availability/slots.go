package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// resolveSlots генерирует упорядоченный список кандидатов слотов на одну дату.
// Чистая функция: для фиксированных (day, interval, date, now) результат
// идентичен при каждом вызове.
//
// Слоты идут от времени открытия с фиксированным шагом interval, пока
// начало слота раньше времени закрытия. Проверяется ТОЛЬКО время начала:
// слот, чей номинальный конец выходит за закрытие, всё равно попадает в
// выдачу - историческое поведение виджета, сохраняемое намеренно.
// Слоты раньше minBookable = now + leadTime пропускаются.
func resolveSlots(
	day domain.DaySchedule,
	intervalMinutes int,
	leadTime time.Duration,
	date time.Time,
	now time.Time,
) ([]domain.CandidateSlot, error) {
	// Закрытый день - не ошибка, а пустой список
	if !day.IsOpen {
		return []domain.CandidateSlot{}, nil
	}

	if intervalMinutes <= 0 {
		return []domain.CandidateSlot{}, fmt.Errorf("slot interval must be positive, got %d", intervalMinutes)
	}

	// Некорректное время в конфигурации трактуется как закрытый день:
	// ошибка возвращается для логирования, но не валит запрос
	cursor, err := day.StartTime.At(date)
	if err != nil {
		return []domain.CandidateSlot{}, err
	}
	end, err := day.EndTime.At(date)
	if err != nil {
		return []domain.CandidateSlot{}, err
	}

	minBookable := now.Add(leadTime)
	step := time.Duration(intervalMinutes) * time.Minute

	slots := make([]domain.CandidateSlot, 0)
	for cursor.Before(end) {
		if cursor.Before(minBookable) {
			// Слишком рано для бронирования - слот пропускается
			cursor = cursor.Add(step)
			continue
		}

		slots = append(slots, domain.CandidateSlot{
			StartTime: types.NewTimeString(cursor),
			Period:    domain.PeriodForHour(cursor.Hour()),
		})
		cursor = cursor.Add(step)
	}

	return slots, nil
}

// filterAvailable убирает кандидатов, занятых существующими бронированиями.
// Бронирование занимает слот, если оно на ту же дату, не отклонено и
// (при заданном фильтре) принадлежит указанному мастеру. Совпадение -
// строгое равенство строк "HH:MM" начала, без пересечения интервалов.
// Порядок выживших кандидатов совпадает с входным.
func filterAvailable(
	candidates []domain.CandidateSlot,
	reservations []*domain.Reservation,
	targetDate time.Time,
	professional *string,
) []domain.CandidateSlot {
	occupied := make(map[string]struct{})
	for _, res := range reservations {
		if !isSameDay(res.Date, targetDate) {
			continue
		}
		if !res.Occupies() {
			continue
		}
		if professional != nil && res.ProfessionalName != *professional {
			continue
		}
		occupied[res.StartTime.String()] = struct{}{}
	}

	available := make([]domain.CandidateSlot, 0, len(candidates))
	for _, slot := range candidates {
		if _, taken := occupied[slot.StartTime.String()]; taken {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
