package reserve_equipment

import (
	"errors"
	"net/http"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidWindow        = "некорректное окно, ожидается RFC 3339"
	msgInvalidInput         = "некорректные параметры аренды"
	msgBookingNotFound      = "бронирование не найдено"
	msgEquipmentNotFound    = "снаряжение не найдено"
	msgNotRentable          = "снаряжение не выдаётся в аренду"
	msgInsufficientQuantity = "недостаточно свободного снаряжения"
)

type Handler struct {
	useCase ReserveEquipmentUseCase
	logger  Logger
}

func NewHandler(useCase ReserveEquipmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rentals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReserveEquipmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rentals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /rentals - Invalid window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	result, err := h.useCase.ReserveEquipment(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidInput):
			h.logger.Warn("POST /rentals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reservation.ErrBookingNotFound):
			h.logger.Warn("POST /rentals - Booking not found: booking_id=%s", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reservation.ErrEquipmentNotFound):
			h.logger.Warn("POST /rentals - Equipment not found: equipment_id=%s", req.EquipmentID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, reservation.ErrNotRentable):
			h.logger.Warn("POST /rentals - Equipment not rentable: equipment_id=%s", req.EquipmentID)
			handlers.RespondUnprocessable(w, msgNotRentable)

		case errors.Is(err, domain.ErrInsufficientAvailability):
			h.logger.Warn("POST /rentals - Insufficient availability: equipment_id=%s, %v", req.EquipmentID, err)
			handlers.RespondConflict(w, msgInsufficientQuantity, handlers.InsufficientDetails(err))

		case reservation.IsRetryable(err):
			h.logger.Error("POST /rentals - Retryable failure: equipment_id=%s, error=%v", req.EquipmentID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /rentals - Failed to reserve equipment: equipment_id=%s, error=%v", req.EquipmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rentals - Rental created: rental_id=%s, equipment_id=%s, quantity=%d",
		result.ID, result.EquipmentID, result.Quantity)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromRental(result))
}
