package assign_staff

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) AssignStaff(ctx context.Context, req *reservation.AssignStaffRequest) (*domain.StaffAssignment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffAssignment), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{"bookingId":"b-1","staffId":"s-1","windowStart":"2024-12-26T10:00:00Z","windowEnd":"2024-12-26T12:00:00Z"}`

func serve(uc AssignStaffUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/staff-assignments", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2024, 12, 26, 10, 0, 0, 0, time.UTC)
	window := domain.NewWindow(start, start.Add(2*time.Hour))

	uc := &MockUseCase{}
	uc.On("AssignStaff", mock.Anything, &reservation.AssignStaffRequest{BookingID: "b-1", StaffID: "s-1", Window: window}).
		Return(&domain.StaffAssignment{
			ID:        "sa-1",
			StaffID:   "s-1",
			BookingID: "b-1",
			Window:    window,
			Status:    domain.StatusActive,
		}, nil)

	rec := serve(uc, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp handlers.StaffAssignmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sa-1", resp.ID)
	assert.Equal(t, "2024-12-26T10:00:00Z", resp.Window.Start)
	uc.AssertExpectations(t)
}

func TestHandle_ScheduleConflict(t *testing.T) {
	conflicting := domain.NewWindow(
		time.Date(2024, 12, 26, 11, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 26, 13, 0, 0, 0, time.UTC),
	)
	uc := &MockUseCase{}
	uc.On("AssignStaff", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("AssignStaff: %w", &domain.ScheduleConflictError{ConflictingAssignmentID: "sa-0", ConflictingWindow: conflicting}))

	rec := serve(uc, body)

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp struct {
		Details handlers.ScheduleConflictDetails `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sa-0", resp.Details.ConflictingAssignmentID)
	assert.Equal(t, "2024-12-26T13:00:00Z", resp.Details.ConflictingWindow.End)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid", reservation.ErrInvalidInput, http.StatusBadRequest},
		{"booking", reservation.ErrBookingNotFound, http.StatusNotFound},
		{"staff", reservation.ErrStaffNotFound, http.StatusNotFound},
		{"unavailable", reservation.ErrStaffUnavailable, http.StatusUnprocessableEntity},
		{"certification", reservation.ErrCertificationExpired, http.StatusUnprocessableEntity},
		{"busy", reservation.ErrResourceBusy, http.StatusServiceUnavailable},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}
			uc.On("AssignStaff", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("AssignStaff: %w", tt.err))

			assert.Equal(t, tt.status, serve(uc, body).Code)
		})
	}
}

func TestHandle_DefaultWindowPassedAsZero(t *testing.T) {
	uc := &MockUseCase{}
	uc.On("AssignStaff", mock.Anything, &reservation.AssignStaffRequest{BookingID: "b-1", StaffID: "s-1"}).
		Return(&domain.StaffAssignment{ID: "sa-1", StaffID: "s-1", BookingID: "b-1", Status: domain.StatusActive}, nil)

	rec := serve(uc, `{"bookingId":"b-1","staffId":"s-1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}
