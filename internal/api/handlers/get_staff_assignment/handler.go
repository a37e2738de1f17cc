package get_staff_assignment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

const (
	msgInvalidAssignmentID = "некорректный ID назначения"
	msgNotFound            = "назначение не найдено"
)

type Handler struct {
	useCase GetStaffAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase GetStaffAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff-assignments/{assignmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assignmentID := mux.Vars(r)["assignmentId"]

	result, err := h.useCase.GetStaffAssignment(r.Context(), assignmentID)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		case errors.Is(err, reservation.ErrAssignmentNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case reservation.IsRetryable(err):
			h.logger.Error("GET /staff-assignments/{id} - Retryable failure: assignment_id=%s, error=%v", assignmentID, err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /staff-assignments/{id} - Failed to get assignment: assignment_id=%s, error=%v", assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromStaffAssignment(result))
}
