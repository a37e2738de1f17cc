package get_staff_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) StaffAvailability(ctx context.Context, req *reservation.StaffAvailabilityRequest) (*reservation.StaffAvailability, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.StaffAvailability), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc StaffAvailabilityUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/staff/{staffId}/availability", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Conflicting(t *testing.T) {
	window := domain.NewWindow(
		time.Date(2024, 12, 26, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 26, 12, 0, 0, 0, time.UTC),
	)
	held := domain.NewWindow(window.Start.Add(time.Hour), window.End.Add(time.Hour))

	uc := &MockUseCase{}
	uc.On("StaffAvailability", mock.Anything, &reservation.StaffAvailabilityRequest{
		StaffID:             "s-1",
		Window:              window,
		ExcludeAssignmentID: "sa-9",
	}).Return(&reservation.StaffAvailability{
		StaffID:     "s-1",
		Window:      window,
		Free:        false,
		Conflicting: &domain.Holding{AssignmentID: "sa-1", Units: 1, Window: held},
	}, nil)

	rec := serve(uc, "/api/v1/staff/s-1/availability?start=2024-12-26T10:00:00Z&end=2024-12-26T12:00:00Z&excludeAssignmentId=sa-9")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Free)
	require.NotNil(t, resp.Conflicting)
	assert.Equal(t, "sa-1", resp.Conflicting.AssignmentID)
	uc.AssertExpectations(t)
}

func TestHandle_WindowRequired(t *testing.T) {
	uc := &MockUseCase{}

	assert.Equal(t, http.StatusBadRequest, serve(uc, "/api/v1/staff/s-1/availability").Code)
	assert.Equal(t, http.StatusBadRequest, serve(uc, "/api/v1/staff/s-1/availability?start=2024-12-26T10:00:00Z").Code)
	uc.AssertNotCalled(t, "StaffAvailability", mock.Anything, mock.Anything)
}

func TestHandle_StaffNotFound(t *testing.T) {
	uc := &MockUseCase{}
	uc.On("StaffAvailability", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("StaffAvailability: %w", reservation.ErrStaffNotFound))

	rec := serve(uc, "/api/v1/staff/ghost/availability?start=2024-12-26T10:00:00Z&end=2024-12-26T12:00:00Z")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
