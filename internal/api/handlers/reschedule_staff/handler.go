package reschedule_staff

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWindow      = "некорректное окно, ожидается RFC 3339"
	msgNotFound           = "назначение не найдено"
	msgAlreadyReleased    = "назначение уже снято"
	msgScheduleConflict   = "сотрудник уже занят в это время"
)

type Handler struct {
	useCase RescheduleStaffUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleStaffUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/staff-assignments/{assignmentId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assignmentID := mux.Vars(r)["assignmentId"]

	var req RescheduleStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /staff-assignments/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	window, err := handlers.ParseWindow(req.WindowStart, req.WindowEnd)
	if err != nil {
		h.logger.Warn("PATCH /staff-assignments/{id}/schedule - Invalid window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	result, err := h.useCase.RescheduleStaff(r.Context(), &reservation.RescheduleStaffRequest{
		AssignmentID: assignmentID,
		Window:       window,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidInput):
			h.logger.Warn("PATCH /staff-assignments/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, reservation.ErrAssignmentNotFound):
			h.logger.Warn("PATCH /staff-assignments/{id}/schedule - Assignment not found: assignment_id=%s", assignmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservation.ErrAlreadyReleased):
			h.logger.Warn("PATCH /staff-assignments/{id}/schedule - Already released: assignment_id=%s", assignmentID)
			handlers.RespondConflict(w, msgAlreadyReleased, nil)

		case errors.Is(err, domain.ErrScheduleConflict):
			h.logger.Warn("PATCH /staff-assignments/{id}/schedule - Schedule conflict: assignment_id=%s, %v", assignmentID, err)
			handlers.RespondConflict(w, msgScheduleConflict, handlers.ConflictDetails(err))

		case reservation.IsRetryable(err):
			h.logger.Error("PATCH /staff-assignments/{id}/schedule - Retryable failure: assignment_id=%s, error=%v", assignmentID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PATCH /staff-assignments/{id}/schedule - Failed to reschedule: assignment_id=%s, error=%v", assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /staff-assignments/{id}/schedule - Assignment moved: assignment_id=%s, window=%s", result.ID, result.Window)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromStaffAssignment(result))
}
