package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

func TestMemoryServiceRepository_Update_ByStructID(t *testing.T) {
	repo := NewMemoryServiceRepository()

	created, err := repo.Create(context.Background(), &domain.Service{
		Name:            "Corte",
		DurationMinutes: 30,
		Price:           ptr.Ptr("15€"),
	})
	require.NoError(t, err)

	updated, err := repo.Update(context.Background(), &domain.Service{
		ID:              created.ID,
		Name:            "Corte e Barba",
		DurationMinutes: 45,
		Price:           ptr.Ptr("25€"),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Corte e Barba", updated.Name)
	// CreatedAt сохраняется от исходной записи
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestMemoryServiceRepository_Update_NotFound(t *testing.T) {
	repo := NewMemoryServiceRepository()

	_, err := repo.Update(context.Background(), &domain.Service{ID: 42, Name: "Corte", DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestMemoryProfessionalRepository_Update_ByStructID(t *testing.T) {
	repo := NewMemoryProfessionalRepository()

	created, err := repo.Create(context.Background(), &domain.Professional{
		Name:         "Maria",
		Role:         "Cabeleireira",
		ServiceNames: []string{"Corte"},
	})
	require.NoError(t, err)

	updated, err := repo.Update(context.Background(), &domain.Professional{
		ID:           created.ID,
		Name:         "Maria Santos",
		Role:         "Cabeleireira",
		ServiceNames: []string{"Corte", "Coloração"},
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Maria Santos", updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestMemoryProfessionalRepository_Update_NotFound(t *testing.T) {
	repo := NewMemoryProfessionalRepository()

	_, err := repo.Update(context.Background(), &domain.Professional{ID: 7, Name: "Maria", Role: "Cabeleireira"})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}
