package assign_staff

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
	msgInvalidInput         = "некорректные параметры назначения"
	msgBookingNotFound      = "бронирование не найдено"
	msgStaffNotFound        = "сотрудник не найден"
	msgStaffUnavailable     = "сотрудник недоступен"
	msgCertificationExpired = "сертификат сотрудника истекает до окончания назначения"
	msgScheduleConflict     = "сотрудник уже занят в это время"
)

type Handler struct {
	useCase AssignStaffUseCase
	logger  Logger
}

func NewHandler(useCase AssignStaffUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff-assignments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AssignStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff-assignments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /staff-assignments - Invalid window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	result, err := h.useCase.AssignStaff(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrInvalidInput):
			h.logger.Warn("POST /staff-assignments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reservation.ErrBookingNotFound):
			h.logger.Warn("POST /staff-assignments - Booking not found: booking_id=%s", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reservation.ErrStaffNotFound):
			h.logger.Warn("POST /staff-assignments - Staff not found: staff_id=%s", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, reservation.ErrStaffUnavailable):
			h.logger.Warn("POST /staff-assignments - Staff unavailable: staff_id=%s", req.StaffID)
			handlers.RespondUnprocessable(w, msgStaffUnavailable)

		case errors.Is(err, reservation.ErrCertificationExpired):
			h.logger.Warn("POST /staff-assignments - Certification expired: staff_id=%s, %v", req.StaffID, err)
			handlers.RespondUnprocessable(w, msgCertificationExpired)

		case errors.Is(err, domain.ErrScheduleConflict):
			h.logger.Warn("POST /staff-assignments - Schedule conflict: staff_id=%s, %v", req.StaffID, err)
			handlers.RespondConflict(w, msgScheduleConflict, handlers.ConflictDetails(err))

		case reservation.IsRetryable(err):
			h.logger.Error("POST /staff-assignments - Retryable failure: staff_id=%s, error=%v", req.StaffID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /staff-assignments - Failed to assign staff: staff_id=%s, error=%v", req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff-assignments - Staff assigned: assignment_id=%s, staff_id=%s, booking_id=%s",
		result.ID, result.StaffID, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromStaffAssignment(result))
}
