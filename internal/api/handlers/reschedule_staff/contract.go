package reschedule_staff

import (
	"context"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

type RescheduleStaffUseCase interface {
	RescheduleStaff(ctx context.Context, req *reservation.RescheduleStaffRequest) (*domain.StaffAssignment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
