package get_booking_assignments

import (
	"context"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

type BookingAssignmentsUseCase interface {
	BookingAssignments(ctx context.Context, bookingID string, includeHistory bool) (*reservation.BookingAssignments, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
