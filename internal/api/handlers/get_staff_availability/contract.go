package get_staff_availability

import (
	"context"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

type StaffAvailabilityUseCase interface {
	StaffAvailability(ctx context.Context, req *reservation.StaffAvailabilityRequest) (*reservation.StaffAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
