package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// MemoryRepository in-memory хранилище конфигурации расписания
type MemoryRepository struct {
	mu       sync.RWMutex
	schedule *domain.WeeklySchedule
}

// NewMemoryRepository создает пустое in-memory хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Get возвращает сохраненную конфигурацию или ErrScheduleNotFound
func (m *MemoryRepository) Get(_ context.Context) (*domain.WeeklySchedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.schedule == nil {
		return nil, ErrScheduleNotFound
	}

	copied := *m.schedule
	copied.Days = make(map[time.Weekday]domain.DaySchedule, len(m.schedule.Days))
	for wd, day := range m.schedule.Days {
		copied.Days[wd] = day
	}
	return &copied, nil
}

// Set сохраняет конфигурацию целиком и возвращает сохраненную копию
func (m *MemoryRepository) Set(_ context.Context, schedule *domain.WeeklySchedule) (*domain.WeeklySchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *schedule
	copied.Days = make(map[time.Weekday]domain.DaySchedule, len(schedule.Days))
	for wd, day := range schedule.Days {
		copied.Days[wd] = day
	}
	copied.UpdatedAt = time.Now()

	m.schedule = &copied
	return &copied, nil
}
