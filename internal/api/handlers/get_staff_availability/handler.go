package get_staff_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

const (
	msgInvalidWindow = "некорректное окно, ожидаются параметры start и end в RFC 3339"
	msgInvalidInput  = "некорректные параметры запроса"
	msgNotFound      = "сотрудник не найден"
)

type Handler struct {
	useCase StaffAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase StaffAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/availability?start=...&end=...&excludeAssignmentId=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID := mux.Vars(r)["staffId"]
	query := r.URL.Query()

	window, err := handlers.ParseWindow(query.Get("start"), query.Get("end"))
	if err != nil || window.IsZero() {
		h.logger.Warn("GET /staff/{id}/availability - Invalid window: staff_id=%s, error=%v", staffID, err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	result, err := h.useCase.StaffAvailability(r.Context(), &reservation.StaffAvailabilityRequest{
		StaffID:             staffID,
		Window:              window,
		ExcludeAssignmentID: query.Get("excludeAssignmentId"),
	})
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, reservation.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case reservation.IsRetryable(err):
			h.logger.Error("GET /staff/{id}/availability - Retryable failure: staff_id=%s, error=%v", staffID, err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /staff/{id}/availability - Failed to check availability: staff_id=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCase(result))
}
