package reserve_equipment

import (
	"context"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

type ReserveEquipmentUseCase interface {
	ReserveEquipment(ctx context.Context, req *reservation.ReserveEquipmentRequest) (*domain.RentalAssignment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
