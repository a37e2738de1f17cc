package schedule

import (
	"context"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

// StaffCatalog чтение каталога сотрудников
type StaffCatalog interface {
	GetStaff(ctx context.Context, id string) (*domain.StaffMember, error)
}

// StaffAssignmentRepository чтение активных назначений
type StaffAssignmentRepository interface {
	ListActiveByStaff(ctx context.Context, staffID string) ([]*domain.StaffAssignment, error)
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
