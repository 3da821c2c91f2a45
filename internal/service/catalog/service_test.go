package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	args := m.Called(ctx, service)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	args := m.Called(ctx, service)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProfessionalRepository struct {
	mock.Mock
}

func (m *MockProfessionalRepository) Create(ctx context.Context, professional *domain.Professional) (*domain.Professional, error) {
	args := m.Called(ctx, professional)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) List(ctx context.Context) ([]*domain.Professional, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) Update(ctx context.Context, professional *domain.Professional) (*domain.Professional, error) {
	args := m.Called(ctx, professional)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(sr ServiceRepository, pr ProfessionalRepository) *Service {
	return NewService(sr, pr, nopLogger{})
}

func TestService_CreateService_Success(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Service) bool {
		return s.Name == "Corte" && s.DurationMinutes == 45
	})).Return(&domain.Service{ID: 1, Name: "Corte", DurationMinutes: 45}, nil)

	svc := newTestService(repo, new(MockProfessionalRepository))
	resp, err := svc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name:            "  Corte  ",
		DurationMinutes: 45,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	repo.AssertExpectations(t)
}

func TestService_CreateService_Validation(t *testing.T) {
	svc := newTestService(new(MockServiceRepository), new(MockProfessionalRepository))

	_, err := svc.CreateService(context.Background(), &models.CreateServiceRequest{Name: " ", DurationMinutes: 45})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateService(context.Background(), &models.CreateServiceRequest{Name: "Corte", DurationMinutes: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateService_NotFound(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, catalogRepo.ErrServiceNotFound)

	svc := newTestService(repo, new(MockProfessionalRepository))
	_, err := svc.UpdateService(context.Background(), 99, &models.UpdateServiceRequest{
		Name:            "Corte",
		DurationMinutes: 45,
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_DeleteService_NotFound(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("Delete", mock.Anything, int64(99)).Return(catalogRepo.ErrServiceNotFound)

	svc := newTestService(repo, new(MockProfessionalRepository))
	err := svc.DeleteService(context.Background(), 99)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_ListServices(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("List", mock.Anything).Return([]*domain.Service{
		{ID: 1, Name: "Corte"},
		{ID: 2, Name: "Coloração", Price: ptr.Ptr("45€")},
	}, nil)

	svc := newTestService(repo, new(MockProfessionalRepository))
	resp, err := svc.ListServices(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Coloração", resp.Services[1].Name)
}

func TestService_CreateProfessional_Success(t *testing.T) {
	repo := new(MockProfessionalRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Professional) bool {
		return p.Name == "Maria" && p.Role == "Cabeleireira"
	})).Return(&domain.Professional{ID: 1, Name: "Maria", Role: "Cabeleireira", ServiceNames: []string{"Corte"}}, nil)

	svc := newTestService(new(MockServiceRepository), repo)
	resp, err := svc.CreateProfessional(context.Background(), &models.CreateProfessionalRequest{
		Name:         "Maria",
		Role:         "Cabeleireira",
		ServiceNames: []string{"Corte"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Corte"}, resp.ServiceNames)
	repo.AssertExpectations(t)
}

func TestService_CreateProfessional_Validation(t *testing.T) {
	svc := newTestService(new(MockServiceRepository), new(MockProfessionalRepository))

	_, err := svc.CreateProfessional(context.Background(), &models.CreateProfessionalRequest{Name: "", Role: "Cabeleireira"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateProfessional(context.Background(), &models.CreateProfessionalRequest{Name: "Maria", Role: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateProfessional_NotFound(t *testing.T) {
	repo := new(MockProfessionalRepository)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, catalogRepo.ErrProfessionalNotFound)

	svc := newTestService(new(MockServiceRepository), repo)
	_, err := svc.UpdateProfessional(context.Background(), 99, &models.UpdateProfessionalRequest{
		Name: "Maria",
		Role: "Cabeleireira",
	})

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestService_ListProfessionals_NilServiceNames(t *testing.T) {
	repo := new(MockProfessionalRepository)
	repo.On("List", mock.Anything).Return([]*domain.Professional{
		{ID: 1, Name: "Maria", Role: "Cabeleireira"},
	}, nil)

	svc := newTestService(new(MockServiceRepository), repo)
	resp, err := svc.ListProfessionals(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Professionals, 1)
	// nil в domain не должен протекать в JSON как null
	assert.NotNil(t, resp.Professionals[0].ServiceNames)
}
