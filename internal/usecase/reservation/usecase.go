package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/integrations/bookingservice"
)

// Repositories хранилища, с которыми работает оркестратор
type Repositories struct {
	Catalog          Catalog
	Rentals          RentalRepository
	StaffAssignments StaffAssignmentRepository
}

// UseCase оркестратор резервирований - единственный компонент с правом записи
// состояния распределения. Каждая операция записи выполняется одним атомарным
// шагом по ключу ресурса (снаряжение или сотрудник).
type UseCase struct {
	catalog          Catalog
	rentals          RentalRepository
	staffAssignments StaffAssignmentRepository
	bookings         BookingReader
	allocator        Allocator
	ledger           Ledger
	detector         ConflictDetector
	metrics          OperationMetrics
	timeProvider     TimeProvider
	ids              IDGenerator
	logger           Logger
}

// NewUseCase создает новый экземпляр оркестратора. metrics может быть nil.
func NewUseCase(
	repos Repositories,
	bookings BookingReader,
	allocator Allocator,
	ledger Ledger,
	detector ConflictDetector,
	metrics OperationMetrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		catalog:          repos.Catalog,
		rentals:          repos.Rentals,
		staffAssignments: repos.StaffAssignments,
		bookings:         bookings,
		allocator:        allocator,
		ledger:           ledger,
		detector:         detector,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		ids:              UUIDGenerator{},
		logger:           logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// WithIDGenerator подменяет генератор идентификаторов
func (uc *UseCase) WithIDGenerator(ids IDGenerator) *UseCase {
	uc.ids = ids
	return uc
}

// observe фиксирует исход операции в метриках
func (uc *UseCase) observe(op string, started time.Time, err error) {
	uc.metrics.ObserveOperation(op, outcome(err), time.Since(started))
}

// getBooking читает бронирование процесса бронирования
func (uc *UseCase) getBooking(ctx context.Context, op, bookingID string) (*domain.Booking, error) {
	booking, err := uc.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingservice.ErrBookingNotFound) {
			uc.logger.Warn("%s: booking id=%s not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("%s: failed to get booking id=%s: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - get booking: %w", ErrPersistence, op, err)
	}
	return booking, nil
}

// resolveBooking проверяет бронирование и подставляет его окно, если окно не задано
func (uc *UseCase) resolveBooking(ctx context.Context, op, bookingID string, window domain.Window) (domain.Window, error) {
	booking, err := uc.getBooking(ctx, op, bookingID)
	if err != nil {
		return domain.Window{}, err
	}

	if !window.IsZero() {
		return window.UTC(), nil
	}

	def, ok := booking.DefaultWindow()
	if !ok {
		uc.logger.Warn("%s: booking id=%s has no usable window %s", op, bookingID, booking.Window)
		return domain.Window{}, fmt.Errorf("%w: window is required, booking %s window %s is empty",
			ErrInvalidInput, bookingID, booking.Window)
	}
	if err := validateWindow(def, false); err != nil {
		return domain.Window{}, err
	}
	return def.UTC(), nil
}

// logResult пишет итог операции с уровнем по категории ошибки
func (uc *UseCase) logResult(op string, err error, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	switch {
	case err == nil:
		uc.logger.Info("%s: %s", op, msg)
	case IsRetryable(err):
		uc.logger.Error("%s: %s: %v", op, msg, err)
	default:
		uc.logger.Warn("%s: %s: %v", op, msg, err)
	}
}
