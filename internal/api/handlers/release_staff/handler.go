package release_staff

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
	msgAlreadyReleased     = "назначение уже снято"
)

type Handler struct {
	useCase ReleaseStaffUseCase
	logger  Logger
}

func NewHandler(useCase ReleaseStaffUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/staff-assignments/{assignmentId}/release
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assignmentID := mux.Vars(r)["assignmentId"]

	result, err := h.useCase.ReleaseStaff(r.Context(), assignmentID)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidInput):
			h.logger.Warn("PATCH /staff-assignments/{id}/release - Invalid assignment ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAssignmentID)

		case errors.Is(err, reservation.ErrAssignmentNotFound):
			h.logger.Warn("PATCH /staff-assignments/{id}/release - Assignment not found: assignment_id=%s", assignmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservation.ErrAlreadyReleased):
			h.logger.Warn("PATCH /staff-assignments/{id}/release - Already released: assignment_id=%s", assignmentID)
			handlers.RespondConflict(w, msgAlreadyReleased, nil)

		case reservation.IsRetryable(err):
			h.logger.Error("PATCH /staff-assignments/{id}/release - Retryable failure: assignment_id=%s, error=%v", assignmentID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PATCH /staff-assignments/{id}/release - Failed to release staff: assignment_id=%s, error=%v", assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /staff-assignments/{id}/release - Staff released: assignment_id=%s, staff_id=%s", result.ID, result.StaffID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromStaffAssignment(result))
}
