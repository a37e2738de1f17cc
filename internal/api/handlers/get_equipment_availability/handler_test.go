package get_equipment_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) EquipmentAvailability(ctx context.Context, equipmentID string) (*reservation.EquipmentAvailability, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.EquipmentAvailability), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc EquipmentAvailabilityUseCase, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/equipment/{equipmentId}/availability", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/equipment/"+id+"/availability", nil))
	return rec
}

func TestHandle_Availability(t *testing.T) {
	uc := &MockUseCase{}
	uc.On("EquipmentAvailability", mock.Anything, "tank-12l").
		Return(&reservation.EquipmentAvailability{EquipmentID: "tank-12l", InStock: 5, Allocated: 3, Available: 2}, nil)

	rec := serve(uc, "tank-12l")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, AvailabilityResponse{EquipmentID: "tank-12l", InStock: 5, Allocated: 3, Available: 2}, resp)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid", reservation.ErrInvalidInput, http.StatusBadRequest},
		{"not found", reservation.ErrEquipmentNotFound, http.StatusNotFound},
		{"persistence", reservation.ErrPersistence, http.StatusServiceUnavailable},
		{"internal", reservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}
			uc.On("EquipmentAvailability", mock.Anything, "tank-12l").Return(nil, fmt.Errorf("EquipmentAvailability: %w", tt.err))

			assert.Equal(t, tt.status, serve(uc, "tank-12l").Code)
		})
	}
}
