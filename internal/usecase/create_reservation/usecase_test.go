package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, reservation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, 10, 10, 12, 0, 0, 0, time.Local)

func newTestUseCase(repo ReservationRepository) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		ClientName:       "Ana Silva",
		ClientPhone:      "+351 912 345 678",
		ClientEmail:      ptr.Ptr("ana@example.com"),
		ServiceName:      "Corte",
		ProfessionalName: "Maria",
		Date:             time.Date(2025, 10, 15, 0, 0, 0, 0, time.Local),
		StartTime:        "10:00",
		WantsReminders:   true,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.Status == domain.StatusPending && r.ClientName == "Ana Silva"
	})).Return(&domain.Reservation{
		ID:     "b7e3c1a0-0000-0000-0000-000000000001",
		Status: domain.StatusPending,
	}, nil)

	uc := newTestUseCase(repo)
	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Reservation.Status)
	assert.NotEmpty(t, resp.Reservation.ID)
	repo.AssertExpectations(t)
}

func TestUseCase_Execute_NoOccupancyCheck(t *testing.T) {
	// Два запроса на один и тот же слот оба проходят: занятость при
	// создании не проверяется, разбирается администратор
	repo := new(MockReservationRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Reservation{Status: domain.StatusPending}, nil).Twice()

	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(new(MockReservationRepository))

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"empty client name", func(r *Request) { r.ClientName = "  " }},
		{"empty phone", func(r *Request) { r.ClientPhone = "" }},
		{"empty service", func(r *Request) { r.ServiceName = "" }},
		{"empty professional", func(r *Request) { r.ProfessionalName = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"malformed start time", func(r *Request) { r.StartTime = "9am" }},
		{"past date", func(r *Request) { r.Date = testNow.AddDate(0, 0, -1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_TodayAllowed(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Reservation{Status: domain.StatusPending}, nil)

	uc := newTestUseCase(repo)
	req := validRequest()
	req.Date = testNow

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	repo := new(MockReservationRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	uc := newTestUseCase(repo)
	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
