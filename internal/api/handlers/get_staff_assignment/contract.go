package get_staff_assignment

import (
	"context"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

type GetStaffAssignmentUseCase interface {
	GetStaffAssignment(ctx context.Context, assignmentID string) (*domain.StaffAssignment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
