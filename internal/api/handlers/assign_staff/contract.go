package assign_staff

import (
	"context"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

type AssignStaffUseCase interface {
	AssignStaff(ctx context.Context, req *reservation.AssignStaffRequest) (*domain.StaffAssignment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
