package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// MemoryServiceRepository in-memory хранилище каталога услуг
type MemoryServiceRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.Service
}

// NewMemoryServiceRepository создает пустое in-memory хранилище услуг
func NewMemoryServiceRepository() *MemoryServiceRepository {
	return &MemoryServiceRepository{nextID: 1, items: make(map[int64]domain.Service)}
}

// Create создает новую услугу
func (m *MemoryServiceRepository) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	svc.ID = m.nextID
	m.nextID++
	svc.CreatedAt = now
	svc.UpdatedAt = now

	m.items[svc.ID] = *svc
	return svc, nil
}

// List возвращает все услуги в порядке создания
func (m *MemoryServiceRepository) List(_ context.Context) ([]*domain.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	services := make([]*domain.Service, 0, len(m.items))
	for _, svc := range m.items {
		copied := svc
		services = append(services, &copied)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

// Update обновляет услугу по svc.ID
func (m *MemoryServiceRepository) Update(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.items[svc.ID]
	if !ok {
		return nil, ErrServiceNotFound
	}

	svc.CreatedAt = existing.CreatedAt
	svc.UpdatedAt = time.Now()
	m.items[svc.ID] = *svc

	return svc, nil
}

// Delete удаляет услугу по ID
func (m *MemoryServiceRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ErrServiceNotFound
	}
	delete(m.items, id)
	return nil
}

// MemoryProfessionalRepository in-memory хранилище мастеров
type MemoryProfessionalRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]domain.Professional
}

// NewMemoryProfessionalRepository создает пустое in-memory хранилище мастеров
func NewMemoryProfessionalRepository() *MemoryProfessionalRepository {
	return &MemoryProfessionalRepository{nextID: 1, items: make(map[int64]domain.Professional)}
}

// Create создает нового мастера
func (m *MemoryProfessionalRepository) Create(_ context.Context, prof *domain.Professional) (*domain.Professional, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	prof.ID = m.nextID
	m.nextID++
	prof.CreatedAt = now
	prof.UpdatedAt = now

	m.items[prof.ID] = *prof
	return prof, nil
}

// List возвращает всех мастеров в порядке создания
func (m *MemoryProfessionalRepository) List(_ context.Context) ([]*domain.Professional, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	professionals := make([]*domain.Professional, 0, len(m.items))
	for _, prof := range m.items {
		copied := prof
		professionals = append(professionals, &copied)
	}
	sort.Slice(professionals, func(i, j int) bool { return professionals[i].ID < professionals[j].ID })
	return professionals, nil
}

// Update обновляет мастера по prof.ID
func (m *MemoryProfessionalRepository) Update(_ context.Context, prof *domain.Professional) (*domain.Professional, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.items[prof.ID]
	if !ok {
		return nil, ErrProfessionalNotFound
	}

	prof.CreatedAt = existing.CreatedAt
	prof.UpdatedAt = time.Now()
	m.items[prof.ID] = *prof

	return prof, nil
}

// Delete удаляет мастера по ID
func (m *MemoryProfessionalRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ErrProfessionalNotFound
	}
	delete(m.items, id)
	return nil
}
