package reservation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/service/availability"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/service/schedule"
)

// Catalog каталог ресурсов. Lock* вызываются только внутри атомарного шага.
type Catalog interface {
	GetEquipment(ctx context.Context, id string) (*domain.EquipmentItem, error)
	LockEquipment(ctx context.Context, id string) (*domain.EquipmentItem, error)
	GetStaff(ctx context.Context, id string) (*domain.StaffMember, error)
	LockStaff(ctx context.Context, id string) (*domain.StaffMember, error)
}

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.RentalAssignment) (*domain.RentalAssignment, error)
	GetByID(ctx context.Context, id string) (*domain.RentalAssignment, error)
	ListByBooking(ctx context.Context, filter domain.AssignmentsFilter) ([]*domain.RentalAssignment, error)
	MarkReturned(ctx context.Context, id string, returnedAt time.Time) error
}

// StaffAssignmentRepository интерфейс репозитория назначений сотрудников
type StaffAssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.StaffAssignment) (*domain.StaffAssignment, error)
	GetByID(ctx context.Context, id string) (*domain.StaffAssignment, error)
	ListByBooking(ctx context.Context, filter domain.AssignmentsFilter) ([]*domain.StaffAssignment, error)
	MarkReleased(ctx context.Context, id string, releasedAt time.Time) error
	UpdateWindow(ctx context.Context, id string, window domain.Window, updatedAt time.Time) error
}

// BookingReader чтение бронирований процесса бронирования
type BookingReader interface {
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
}

// Allocator атомарный шаг проверки и записи по ключу ресурса
type Allocator interface {
	Do(ctx context.Context, key domain.ResourceKey, fn func(ctx context.Context) error) error
}

// Ledger учёт свободного снаряжения
type Ledger interface {
	Available(ctx context.Context, equipmentID string) (*availability.Availability, error)
	Admit(ctx context.Context, item *domain.EquipmentItem, claim domain.Claim) (*availability.Availability, error)
}

// ConflictDetector проверка расписания сотрудников
type ConflictDetector interface {
	HasConflict(ctx context.Context, staffID string, window domain.Window, excludeAssignmentID string) (*schedule.Conflict, error)
	Admit(ctx context.Context, member *domain.StaffMember, claim domain.Claim) error
}

// OperationMetrics метрики операций резервирования
type OperationMetrics interface {
	ObserveOperation(operation, outcome string, duration time.Duration)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator генератор идентификаторов назначений
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator генерирует идентификаторы UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый UUID
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

type nopMetrics struct{}

func (nopMetrics) ObserveOperation(string, string, time.Duration) {}
