package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

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

func (m *MockScheduleRepository) Set(ctx context.Context, schedule *domain.WeeklySchedule) (*domain.WeeklySchedule, error) {
	args := m.Called(ctx, schedule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WeeklySchedule), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validUpdateRequest() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		Days: map[string]models.DayScheduleDTO{
			"0": {IsOpen: false},
			"1": {IsOpen: true, StartTime: "09:00", EndTime: "18:00"},
			"3": {IsOpen: true, StartTime: "10:00", EndTime: "20:00"},
		},
		SlotIntervalMinutes: 30,
	}
}

func TestService_Get_MissingConfigReturnsDefaults(t *testing.T) {
	repo := new(MockScheduleRepository)
	repo.On("Get", mock.Anything).Return(nil, scheduleRepo.ErrScheduleNotFound)

	svc := NewService(repo, nopLogger{})
	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotIntervalMinutes, resp.SlotIntervalMinutes)
	// Воскресенье закрыто, будни открыты 09:00-18:00
	assert.False(t, resp.Days["0"].IsOpen)
	assert.True(t, resp.Days["3"].IsOpen)
	assert.Equal(t, "09:00", resp.Days["3"].StartTime)
	assert.Equal(t, "18:00", resp.Days["3"].EndTime)
}

func TestService_Get_StoredConfig(t *testing.T) {
	repo := new(MockScheduleRepository)
	repo.On("Get", mock.Anything).Return(&domain.WeeklySchedule{
		Days: map[time.Weekday]domain.DaySchedule{
			time.Tuesday: {IsOpen: true, StartTime: "08:00", EndTime: "14:00"},
		},
		SlotIntervalMinutes: 45,
	}, nil)

	svc := NewService(repo, nopLogger{})
	resp, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 45, resp.SlotIntervalMinutes)
	assert.Equal(t, "08:00", resp.Days["2"].StartTime)
}

func TestService_Update_Success(t *testing.T) {
	repo := new(MockScheduleRepository)
	repo.On("Set", mock.Anything, mock.MatchedBy(func(s *domain.WeeklySchedule) bool {
		day, ok := s.Days[time.Monday]
		return ok && day.IsOpen && s.SlotIntervalMinutes == 30
	})).Return(&domain.WeeklySchedule{
		Days: map[time.Weekday]domain.DaySchedule{
			time.Monday: {IsOpen: true, StartTime: "09:00", EndTime: "18:00"},
		},
		SlotIntervalMinutes: 30,
		UpdatedAt:           time.Now(),
	}, nil)

	svc := NewService(repo, nopLogger{})
	resp, err := svc.Update(context.Background(), validUpdateRequest())

	require.NoError(t, err)
	assert.Equal(t, 30, resp.SlotIntervalMinutes)
	repo.AssertExpectations(t)
}

func TestService_Update_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.UpdateScheduleRequest)
		wantErr error
	}{
		{"interval too small", func(r *models.UpdateScheduleRequest) { r.SlotIntervalMinutes = 1 }, ErrInvalidInterval},
		{"interval too large", func(r *models.UpdateScheduleRequest) { r.SlotIntervalMinutes = 600 }, ErrInvalidInterval},
		{"start after end", func(r *models.UpdateScheduleRequest) {
			r.Days["1"] = models.DayScheduleDTO{IsOpen: true, StartTime: "18:00", EndTime: "09:00"}
		}, ErrInvalidTimeRange},
		{"start equals end", func(r *models.UpdateScheduleRequest) {
			r.Days["1"] = models.DayScheduleDTO{IsOpen: true, StartTime: "09:00", EndTime: "09:00"}
		}, ErrInvalidTimeRange},
		{"malformed time", func(r *models.UpdateScheduleRequest) {
			r.Days["1"] = models.DayScheduleDTO{IsOpen: true, StartTime: "9am", EndTime: "18:00"}
		}, ErrInvalidInput},
		{"bad weekday key", func(r *models.UpdateScheduleRequest) {
			r.Days["7"] = models.DayScheduleDTO{IsOpen: false}
		}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockScheduleRepository)
			svc := NewService(repo, nopLogger{})

			req := validUpdateRequest()
			tt.mutate(req)

			_, err := svc.Update(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Update_ClosedDayHoursIgnored(t *testing.T) {
	// Для закрытого дня часы не валидируются
	repo := new(MockScheduleRepository)
	repo.On("Set", mock.Anything, mock.Anything).Return(&domain.WeeklySchedule{
		Days:                map[time.Weekday]domain.DaySchedule{},
		SlotIntervalMinutes: 30,
	}, nil)

	req := validUpdateRequest()
	req.Days["0"] = models.DayScheduleDTO{IsOpen: false, StartTime: "bogus"}

	svc := NewService(repo, nopLogger{})
	_, err := svc.Update(context.Background(), req)

	require.NoError(t, err)
}
