package reschedule_staff

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
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

func (m *MockUseCase) RescheduleStaff(ctx context.Context, req *reservation.RescheduleStaffRequest) (*domain.StaffAssignment, error) {
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

const body = `{"windowStart":"2024-12-26T14:00:00Z","windowEnd":"2024-12-26T16:00:00Z"}`

func serve(uc RescheduleStaffUseCase, id, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/staff-assignments/{assignmentId}/schedule", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/staff-assignments/"+id+"/schedule", strings.NewReader(body)))
	return rec
}

func TestHandle_Moved(t *testing.T) {
	start := time.Date(2024, 12, 26, 14, 0, 0, 0, time.UTC)
	window := domain.NewWindow(start, start.Add(2*time.Hour))

	uc := &MockUseCase{}
	uc.On("RescheduleStaff", mock.Anything, &reservation.RescheduleStaffRequest{AssignmentID: "sa-1", Window: window}).
		Return(&domain.StaffAssignment{ID: "sa-1", StaffID: "instr-a", BookingID: "b-1", Window: window, Status: domain.StatusActive}, nil)

	rec := serve(uc, "sa-1", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handlers.StaffAssignmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-12-26T14:00:00Z", resp.Window.Start)
	assert.Equal(t, "2024-12-26T16:00:00Z", resp.Window.End)
	assert.Equal(t, "active", resp.Status)
	uc.AssertExpectations(t)
}

func TestHandle_ScheduleConflictDetails(t *testing.T) {
	conflicting := domain.NewWindow(
		time.Date(2024, 12, 26, 15, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 26, 17, 0, 0, 0, time.UTC),
	)
	uc := &MockUseCase{}
	uc.On("RescheduleStaff", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("RescheduleStaff: %w", &domain.ScheduleConflictError{ConflictingAssignmentID: "sa-2", ConflictingWindow: conflicting}))

	rec := serve(uc, "sa-1", body)

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp struct {
		Code    int                              `json:"code"`
		Message string                           `json:"message"`
		Details handlers.ScheduleConflictDetails `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, msgScheduleConflict, resp.Message)
	assert.Equal(t, "sa-2", resp.Details.ConflictingAssignmentID)
	assert.Equal(t, "2024-12-26T15:00:00Z", resp.Details.ConflictingWindow.Start)
	assert.Equal(t, "2024-12-26T17:00:00Z", resp.Details.ConflictingWindow.End)
}

func TestHandle_BadRequestSkipsUseCase(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"windowStart":`},
		{"unknown field", `{"windowStart":"2024-12-26T14:00:00Z","windowEnd":"2024-12-26T16:00:00Z","staffId":"x"}`},
		{"one bound", `{"windowStart":"2024-12-26T14:00:00Z"}`},
		{"not rfc3339", `{"windowStart":"26.12.2024 14:00","windowEnd":"26.12.2024 16:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}

			rec := serve(uc, "sa-1", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			uc.AssertNotCalled(t, "RescheduleStaff", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"inverted window", reservation.ErrInvalidInput, http.StatusBadRequest},
		{"not found", reservation.ErrAssignmentNotFound, http.StatusNotFound},
		{"already released", reservation.ErrAlreadyReleased, http.StatusConflict},
		{"busy", reservation.ErrResourceBusy, http.StatusServiceUnavailable},
		{"internal", reservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}
			uc.On("RescheduleStaff", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("RescheduleStaff: %w", tt.err))

			assert.Equal(t, tt.status, serve(uc, "sa-1", body).Code)
		})
	}
}
