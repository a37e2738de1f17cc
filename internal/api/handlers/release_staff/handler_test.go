package release_staff

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

	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) ReleaseStaff(ctx context.Context, assignmentID string) (*domain.StaffAssignment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffAssignment), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc ReleaseStaffUseCase, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/staff-assignments/{assignmentId}/release", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/staff-assignments/"+id+"/release", nil))
	return rec
}

func TestHandle_Released(t *testing.T) {
	now := time.Date(2024, 12, 26, 9, 0, 0, 0, time.UTC)
	uc := &MockUseCase{}
	uc.On("ReleaseStaff", mock.Anything, "sa-1").Return(&domain.StaffAssignment{
		ID:         "sa-1",
		StaffID:    "instr-a",
		BookingID:  "b-1",
		Status:     domain.StatusReleased,
		ReleasedAt: &now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil)

	rec := serve(uc, "sa-1")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handlers.StaffAssignmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "released", resp.Status)
	require.NotNil(t, resp.ReleasedAt)
	assert.Equal(t, "2024-12-26T09:00:00Z", *resp.ReleasedAt)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid", reservation.ErrInvalidInput, http.StatusBadRequest},
		{"not found", reservation.ErrAssignmentNotFound, http.StatusNotFound},
		{"already released", reservation.ErrAlreadyReleased, http.StatusConflict},
		{"busy", reservation.ErrResourceBusy, http.StatusServiceUnavailable},
		{"persistence", reservation.ErrPersistence, http.StatusServiceUnavailable},
		{"internal", reservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}
			uc.On("ReleaseStaff", mock.Anything, "sa-1").Return(nil, fmt.Errorf("ReleaseStaff: %w", tt.err))

			rec := serve(uc, "sa-1")

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusServiceUnavailable {
				assert.Equal(t, "1", rec.Header().Get("Retry-After"))
			}
		})
	}
}

func TestHandle_AlreadyReleasedHasNoDetails(t *testing.T) {
	uc := &MockUseCase{}
	uc.On("ReleaseStaff", mock.Anything, "sa-1").Return(nil, reservation.ErrAlreadyReleased)

	rec := serve(uc, "sa-1")

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgAlreadyReleased, resp.Message)
	assert.Nil(t, resp.Details)
}
