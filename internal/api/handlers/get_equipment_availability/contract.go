package get_equipment_availability

import (
	"context"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

type EquipmentAvailabilityUseCase interface {
	EquipmentAvailability(ctx context.Context, equipmentID string) (*reservation.EquipmentAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
