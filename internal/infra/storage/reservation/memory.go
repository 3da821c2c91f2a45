package reservation

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// MemoryRepository потокобезопасное in-memory хранилище бронирований.
// Используется как бэкенд при storage.driver = "memory" и как дублёр в тестах.
// Возвращает те же sentinel-ошибки, что и PostgreSQL репозиторий.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Reservation
}

// NewMemoryRepository создает пустое in-memory хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]domain.Reservation)}
}

// Create создает новое бронирование
func (m *MemoryRepository) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	res.ID = uuid.NewString()
	res.CreatedAt = now
	res.UpdatedAt = now

	m.items[res.ID] = *res
	return res, nil
}

// GetByID получает бронирование по ID
func (m *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res, ok := m.items[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	return &res, nil
}

// ListWithFilter получает бронирования с фильтрацией, повторяя
// семантику и порядок сортировки PostgreSQL репозитория
func (m *MemoryRepository) ListWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*domain.Reservation, 0)
	for _, res := range m.items {
		if !matchesFilter(res, filter) {
			continue
		}
		copied := res
		result = append(result, &copied)
	}

	singleDay := filter.From != nil && filter.To != nil && filter.From.Equal(*filter.To)
	sort.Slice(result, func(i, j int) bool {
		if singleDay {
			return result[i].StartTime.IsBefore(result[j].StartTime)
		}
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[j].StartTime.IsBefore(result[i].StartTime)
	})

	return result, nil
}

// UpdateStatus обновляет статус бронирования
func (m *MemoryRepository) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, ok := m.items[id]
	if !ok {
		return ErrReservationNotFound
	}

	res.Status = status
	res.UpdatedAt = time.Now()
	m.items[id] = res
	return nil
}

// Delete удаляет бронирование
func (m *MemoryRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ErrReservationNotFound
	}
	delete(m.items, id)
	return nil
}

func matchesFilter(res domain.Reservation, filter domain.ReservationsFilter) bool {
	if filter.From != nil && dateOnly(res.Date).Before(dateOnly(*filter.From)) {
		return false
	}
	if filter.To != nil && dateOnly(res.Date).After(dateOnly(*filter.To)) {
		return false
	}
	if filter.Professional != nil && res.ProfessionalName != *filter.Professional {
		return false
	}
	if filter.Status != nil {
		return res.Status == *filter.Status
	}
	if !filter.IncludeDeclined && res.Status == domain.StatusDeclined {
		return false
	}
	return true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
