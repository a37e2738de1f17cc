package release_staff

import (
	"context"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

type ReleaseStaffUseCase interface {
	ReleaseStaff(ctx context.Context, assignmentID string) (*domain.StaffAssignment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
