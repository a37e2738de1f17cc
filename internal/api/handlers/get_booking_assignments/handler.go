package get_booking_assignments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

const (
	msgInvalidBookingID      = "некорректный ID бронирования"
	msgInvalidIncludeHistory = "параметр includeHistory должен быть true или false"
	msgNotFound              = "бронирование не найдено"
)

type Handler struct {
	useCase BookingAssignmentsUseCase
	logger  Logger
}

func NewHandler(useCase BookingAssignmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/assignments?includeHistory=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	includeHistory := false
	if raw := r.URL.Query().Get("includeHistory"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidIncludeHistory)
			return
		}
		includeHistory = v
	}

	result, err := h.useCase.BookingAssignments(r.Context(), bookingID, includeHistory)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)
		case errors.Is(err, reservation.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case reservation.IsRetryable(err):
			h.logger.Error("GET /bookings/{id}/assignments - Retryable failure: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /bookings/{id}/assignments - Failed to list assignments: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCase(result))
}
