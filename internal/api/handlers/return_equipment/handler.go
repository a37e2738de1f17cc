package return_equipment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

const (
	msgInvalidAssignmentID = "некорректный ID аренды"
	msgNotFound            = "аренда не найдена"
	msgAlreadyReturned     = "снаряжение уже возвращено"
)

type Handler struct {
	useCase ReturnEquipmentUseCase
	logger  Logger
}

func NewHandler(useCase ReturnEquipmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/rentals/{assignmentId}/return
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assignmentID := mux.Vars(r)["assignmentId"]

	result, err := h.useCase.ReturnEquipment(r.Context(), assignmentID)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidInput):
			h.logger.Warn("PATCH /rentals/{id}/return - Invalid rental ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAssignmentID)

		case errors.Is(err, reservation.ErrAssignmentNotFound):
			h.logger.Warn("PATCH /rentals/{id}/return - Rental not found: rental_id=%s", assignmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservation.ErrAlreadyReturned):
			h.logger.Warn("PATCH /rentals/{id}/return - Already returned: rental_id=%s", assignmentID)
			handlers.RespondConflict(w, msgAlreadyReturned, nil)

		case reservation.IsRetryable(err):
			h.logger.Error("PATCH /rentals/{id}/return - Retryable failure: rental_id=%s, error=%v", assignmentID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PATCH /rentals/{id}/return - Failed to return equipment: rental_id=%s, error=%v", assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rentals/{id}/return - Equipment returned: rental_id=%s, quantity=%d", result.ID, result.Quantity)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromRental(result))
}
