package return_equipment

import (
	"context"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

type ReturnEquipmentUseCase interface {
	ReturnEquipment(ctx context.Context, assignmentID string) (*domain.RentalAssignment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
