package get_equipment_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

const (
	msgInvalidEquipmentID = "некорректный ID снаряжения"
	msgNotFound           = "снаряжение не найдено"
)

type Handler struct {
	useCase EquipmentAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase EquipmentAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/equipment/{equipmentId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	equipmentID := mux.Vars(r)["equipmentId"]

	result, err := h.useCase.EquipmentAvailability(r.Context(), equipmentID)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidEquipmentID)
		case errors.Is(err, reservation.ErrEquipmentNotFound):
			h.logger.Warn("GET /equipment/{id}/availability - Equipment not found: equipment_id=%s", equipmentID)
			handlers.RespondNotFound(w, msgNotFound)
		case reservation.IsRetryable(err):
			h.logger.Error("GET /equipment/{id}/availability - Retryable failure: equipment_id=%s, error=%v", equipmentID, err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /equipment/{id}/availability - Failed to get availability: equipment_id=%s, error=%v", equipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCase(result))
}
