package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Get(ctx context.Context) (*domain.WeeklySchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklySchedule), args.Error(1)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(resRepo ReservationRepository, schedRepo ScheduleRepository, now time.Time) *UseCase {
	uc := NewUseCase(resRepo, schedRepo, 2*time.Hour, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func wednesdaySchedule(start, end types.TimeString, interval int) *domain.WeeklySchedule {
	return &domain.WeeklySchedule{
		Days: map[time.Weekday]domain.DaySchedule{
			time.Wednesday: {IsOpen: true, StartTime: start, EndTime: end},
		},
		SlotIntervalMinutes: interval,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	resRepo := new(MockReservationRepository)
	schedRepo := new(MockScheduleRepository)

	schedRepo.On("Get", mock.Anything).Return(wednesdaySchedule("09:00", "11:00", 60), nil)
	resRepo.On("ListWithFilter", mock.Anything, mock.Anything).Return(
		[]*domain.Reservation{
			reservationAt(testDate, "09:00", "Maria", domain.StatusConfirmed),
		}, nil)

	uc := newTestUseCase(resRepo, schedRepo, distantNow)
	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	require.NoError(t, err)
	assert.False(t, resp.Closed)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].StartTime)

	resRepo.AssertExpectations(t)
	schedRepo.AssertExpectations(t)
}

func TestUseCase_Execute_MissingConfigUsesDefaults(t *testing.T) {
	resRepo := new(MockReservationRepository)
	schedRepo := new(MockScheduleRepository)

	schedRepo.On("Get", mock.Anything).Return(nil, scheduleRepo.ErrScheduleNotFound)
	resRepo.On("ListWithFilter", mock.Anything, mock.Anything).Return([]*domain.Reservation{}, nil)

	uc := newTestUseCase(resRepo, schedRepo, distantNow)
	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	require.NoError(t, err)
	assert.False(t, resp.Closed)
	// Дефолт: среда открыта 09:00-18:00, шаг 60 => 9 слотов
	assert.Len(t, resp.Slots, 9)
}

func TestUseCase_Execute_DefaultSundayClosed(t *testing.T) {
	resRepo := new(MockReservationRepository)
	schedRepo := new(MockScheduleRepository)

	schedRepo.On("Get", mock.Anything).Return(nil, scheduleRepo.ErrScheduleNotFound)

	sunday := time.Date(2025, 10, 19, 0, 0, 0, 0, time.Local)
	uc := newTestUseCase(resRepo, schedRepo, distantNow)
	resp, err := uc.Execute(context.Background(), &Request{Date: sunday})

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
	// Бронирования не запрашиваются для закрытого дня
	resRepo.AssertNotCalled(t, "ListWithFilter", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_ClosedDayRegardlessOfReservations(t *testing.T) {
	resRepo := new(MockReservationRepository)
	schedRepo := new(MockScheduleRepository)

	schedRepo.On("Get", mock.Anything).Return(&domain.WeeklySchedule{
		Days: map[time.Weekday]domain.DaySchedule{
			time.Wednesday: {IsOpen: false},
		},
		SlotIntervalMinutes: 60,
	}, nil)

	uc := newTestUseCase(resRepo, schedRepo, distantNow)
	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_MalformedDayTreatedAsClosed(t *testing.T) {
	resRepo := new(MockReservationRepository)
	schedRepo := new(MockScheduleRepository)

	schedRepo.On("Get", mock.Anything).Return(wednesdaySchedule("9am", "18:00", 60), nil)

	uc := newTestUseCase(resRepo, schedRepo, distantNow)
	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_ProfessionalFilterPassedToRepo(t *testing.T) {
	resRepo := new(MockReservationRepository)
	schedRepo := new(MockScheduleRepository)

	prof := ptr.Ptr("Maria")
	schedRepo.On("Get", mock.Anything).Return(wednesdaySchedule("09:00", "11:00", 60), nil)
	resRepo.On("ListWithFilter", mock.Anything, mock.MatchedBy(func(f domain.ReservationsFilter) bool {
		return f.Professional != nil && *f.Professional == "Maria"
	})).Return([]*domain.Reservation{}, nil)

	uc := newTestUseCase(resRepo, schedRepo, distantNow)
	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Professional: prof})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
	resRepo.AssertExpectations(t)
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	resRepo := new(MockReservationRepository)
	schedRepo := new(MockScheduleRepository)

	schedRepo.On("Get", mock.Anything).Return(wednesdaySchedule("09:00", "11:00", 60), nil)
	resRepo.On("ListWithFilter", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	uc := newTestUseCase(resRepo, schedRepo, distantNow)
	_, err := uc.Execute(context.Background(), &Request{Date: testDate})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(new(MockReservationRepository), new(MockScheduleRepository), distantNow)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testDate, Professional: ptr.Ptr("")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
