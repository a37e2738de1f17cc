package get_rental

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
)

type Handler struct {
	useCase GetRentalUseCase
	logger  Logger
}

func NewHandler(useCase GetRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rentals/{assignmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	assignmentID := mux.Vars(r)["assignmentId"]

	result, err := h.useCase.GetRental(r.Context(), assignmentID)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		case errors.Is(err, reservation.ErrAssignmentNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case reservation.IsRetryable(err):
			h.logger.Error("GET /rentals/{id} - Retryable failure: rental_id=%s, error=%v", assignmentID, err)
			handlers.RespondServiceUnavailable(w)
		default:
			h.logger.Error("GET /rentals/{id} - Failed to get rental: rental_id=%s, error=%v", assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromRental(result))
}
