package availability

import (
	"context"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

// EquipmentCatalog чтение каталога снаряжения
type EquipmentCatalog interface {
	GetEquipment(ctx context.Context, id string) (*domain.EquipmentItem, error)
}

// RentalRepository чтение активных аренд
type RentalRepository interface {
	ListActiveByEquipment(ctx context.Context, equipmentID string) ([]*domain.RentalAssignment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
