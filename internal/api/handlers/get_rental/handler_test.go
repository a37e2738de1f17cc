package get_rental

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

func (m *MockUseCase) GetRental(ctx context.Context, assignmentID string) (*domain.RentalAssignment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalAssignment), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc GetRentalUseCase, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/rentals/{assignmentId}", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rentals/"+id, nil))
	return rec
}

func TestHandle_Found(t *testing.T) {
	start := time.Date(2024, 12, 26, 8, 0, 0, 0, time.UTC)
	uc := &MockUseCase{}
	uc.On("GetRental", mock.Anything, "r-1").Return(&domain.RentalAssignment{
		ID:          "r-1",
		EquipmentID: "tank-12l",
		BookingID:   "b-1",
		Quantity:    2,
		Window:      domain.NewWindow(start, start.Add(34*time.Hour)),
		Status:      domain.StatusActive,
		CreatedAt:   start,
		UpdatedAt:   start,
	}, nil)

	rec := serve(uc, "r-1")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handlers.RentalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tank-12l", resp.EquipmentID)
	assert.Equal(t, 2, resp.Quantity)
	assert.Equal(t, "2024-12-27T18:00:00Z", resp.Window.End)
	assert.Nil(t, resp.ReturnedAt)
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
		{"persistence", reservation.ErrPersistence, http.StatusServiceUnavailable},
		{"internal", reservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}
			uc.On("GetRental", mock.Anything, "r-1").Return(nil, fmt.Errorf("GetRental: %w", tt.err))

			assert.Equal(t, tt.status, serve(uc, "r-1").Code)
		})
	}
}
