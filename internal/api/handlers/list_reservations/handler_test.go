package list_reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
)

type MockReservationsService struct {
	mock.Mock
}

func (m *MockReservationsService) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReservationListResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandler_InvalidIncludeDeclinedRejected(t *testing.T) {
	svc := new(MockReservationsService)
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations?includeDeclined=maybe", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHandler_IncludeDeclinedPassedToService(t *testing.T) {
	svc := new(MockReservationsService)
	svc.On("List", mock.Anything, mock.MatchedBy(func(req *models.ListReservationsRequest) bool {
		return req.IncludeDeclined
	})).Return(&models.ReservationListResponse{Reservations: []models.ReservationResponse{}}, nil)

	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations?includeDeclined=true", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandler_InvalidFromRejected(t *testing.T) {
	svc := new(MockReservationsService)
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations?from=15-10-2025", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
