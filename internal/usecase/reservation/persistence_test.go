package reservation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/rental"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/integrations/bookingservice"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/service/allocator"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/service/availability"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/keylock"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/pgerr"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/txmanager"
)

type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) Create(ctx context.Context, rental *domain.RentalAssignment) (*domain.RentalAssignment, error) {
	args := m.Called(ctx, rental)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalAssignment), args.Error(1)
}

func (m *MockRentalRepository) GetByID(ctx context.Context, id string) (*domain.RentalAssignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalAssignment), args.Error(1)
}

func (m *MockRentalRepository) ListByBooking(ctx context.Context, filter domain.AssignmentsFilter) ([]*domain.RentalAssignment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RentalAssignment), args.Error(1)
}

func (m *MockRentalRepository) MarkReturned(ctx context.Context, id string, returnedAt time.Time) error {
	args := m.Called(ctx, id, returnedAt)
	return args.Error(0)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Available(ctx context.Context, equipmentID string) (*availability.Availability, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*availability.Availability), args.Error(1)
}

func (m *MockLedger) Admit(ctx context.Context, item *domain.EquipmentItem, claim domain.Claim) (*availability.Availability, error) {
	args := m.Called(ctx, item, claim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*availability.Availability), args.Error(1)
}

func newMockedUseCase(f *fixture, rentals RentalRepository, bookings BookingReader, ledger Ledger, locker *keylock.Locker) *UseCase {
	alloc := allocator.NewAllocator(locker, txmanager.NopManager{}, nil, nopLogger{})
	return NewUseCase(
		Repositories{Catalog: f.store.Catalog(), Rentals: rentals, StaffAssignments: f.store.StaffAssignments()},
		bookings,
		alloc,
		ledger,
		nil,
		f.metrics,
		nopLogger{},
	)
}

func TestReserveEquipment_CreateFailureIsRetryable(t *testing.T) {
	f := newFixture(t)

	rentals := new(MockRentalRepository)
	rentals.On("Create", mock.Anything, mock.AnythingOfType("*domain.RentalAssignment")).
		Return(nil, errors.New("pq: could not serialize access"))

	ledger := new(MockLedger)
	ledger.On("Admit", mock.Anything, mock.Anything, mock.AnythingOfType("domain.Claim")).
		Return(&availability.Availability{EquipmentID: "tank", InStock: 5, Available: 5}, nil)

	uc := newMockedUseCase(f, rentals, f.store.Bookings(), ledger, keylock.New(time.Second))

	_, err := uc.ReserveEquipment(context.Background(), &ReserveEquipmentRequest{
		BookingID: "bk-1", EquipmentID: "tank", Quantity: 2, Window: window(10, 14),
	})
	require.ErrorIs(t, err, ErrPersistence)
	assert.True(t, IsRetryable(err))
	assert.False(t, IsRejection(err))
	assert.Equal(t, recordedOp{OpReserveEquipment, "error"}, f.metrics.last())

	rentals.AssertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestReserveEquipment_PostgresErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		code      pq.ErrorCode
		target    error
		retryable bool
	}{
		{name: "serialization failure", code: pgerr.CodeSerializationFailure, target: ErrPersistence, retryable: true},
		{name: "deadlock", code: pgerr.CodeDeadlockDetected, target: ErrPersistence, retryable: true},
		{name: "lock timeout", code: pgerr.CodeLockNotAvailable, target: ErrPersistence, retryable: true},
		{name: "connection failure", code: "08006", target: ErrPersistence, retryable: true},
		{name: "foreign key violation", code: "23503", target: ErrInternal, retryable: false},
		{name: "undefined column", code: "42703", target: ErrInternal, retryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			rentals := new(MockRentalRepository)
			rentals.On("Create", mock.Anything, mock.AnythingOfType("*domain.RentalAssignment")).
				Return(nil, fmt.Errorf("%w: Create - execute insert: %w", rental.ErrExecQuery, &pq.Error{Code: tt.code}))

			ledger := new(MockLedger)
			ledger.On("Admit", mock.Anything, mock.Anything, mock.AnythingOfType("domain.Claim")).
				Return(&availability.Availability{EquipmentID: "tank", InStock: 5, Available: 5}, nil)

			uc := newMockedUseCase(f, rentals, f.store.Bookings(), ledger, keylock.New(time.Second))

			_, err := uc.ReserveEquipment(context.Background(), &ReserveEquipmentRequest{
				BookingID: "bk-1", EquipmentID: "tank", Quantity: 1, Window: window(10, 14),
			})
			require.ErrorIs(t, err, tt.target)
			assert.Equal(t, tt.retryable, IsRetryable(err))
			assert.False(t, IsRejection(err))
		})
	}
}

func TestGetRental_PermanentDBErrorIsInternal(t *testing.T) {
	f := newFixture(t)

	rentals := new(MockRentalRepository)
	rentals.On("GetByID", mock.Anything, "r1").
		Return(nil, fmt.Errorf("%w: GetByID - scan rental: %w", rental.ErrScanRow, &pq.Error{Code: "42P01"}))

	uc := newMockedUseCase(f, rentals, f.store.Bookings(), new(MockLedger), keylock.New(time.Second))

	_, err := uc.GetRental(context.Background(), "r1")
	require.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrPersistence)
	assert.False(t, IsRetryable(err))
	assert.Equal(t, recordedOp{OpGetAssignment, "error"}, f.metrics.last())
}

func TestReserveEquipment_BookingServiceDown(t *testing.T) {
	f := newFixture(t)

	bookings := new(MockBookingReader)
	bookings.On("GetBooking", mock.Anything, "bk-1").
		Return(nil, bookingservice.ErrUnavailable)

	rentals := new(MockRentalRepository)
	ledger := new(MockLedger)

	uc := newMockedUseCase(f, rentals, bookings, ledger, keylock.New(time.Second))

	_, err := uc.ReserveEquipment(context.Background(), &ReserveEquipmentRequest{
		BookingID: "bk-1", EquipmentID: "tank", Quantity: 1, Window: window(10, 14),
	})
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, bookingservice.ErrUnavailable)

	rentals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	ledger.AssertNotCalled(t, "Admit", mock.Anything, mock.Anything, mock.Anything)
}

func TestReturnEquipment_ResourceBusy(t *testing.T) {
	f := newFixture(t)

	active := &domain.RentalAssignment{ID: "r1", EquipmentID: "tank", Quantity: 1, Status: domain.StatusActive}
	rentals := new(MockRentalRepository)
	rentals.On("GetByID", mock.Anything, "r1").Return(active, nil)

	locker := keylock.New(10 * time.Millisecond)
	release, err := locker.Acquire(context.Background(), domain.EquipmentKey("tank").String())
	require.NoError(t, err)
	defer release()

	uc := newMockedUseCase(f, rentals, f.store.Bookings(), new(MockLedger), locker)

	_, err = uc.ReturnEquipment(context.Background(), "r1")
	assert.ErrorIs(t, err, ErrResourceBusy)
	assert.True(t, IsRetryable(err))
	assert.Equal(t, recordedOp{OpReturnEquipment, "busy"}, f.metrics.last())

	rentals.AssertNotCalled(t, "MarkReturned", mock.Anything, mock.Anything, mock.Anything)
}

func TestReturnEquipment_ConcurrentReturnDetected(t *testing.T) {
	f := newFixture(t)

	active := &domain.RentalAssignment{ID: "r1", EquipmentID: "tank", Quantity: 1, Status: domain.StatusActive}
	rentals := new(MockRentalRepository)
	rentals.On("GetByID", mock.Anything, "r1").Return(active, nil)
	// другой запрос успел вернуть аренду между чтением и блокировкой
	rentals.On("MarkReturned", mock.Anything, "r1", mock.AnythingOfType("time.Time")).
		Return(rentalErrNotActive())

	uc := newMockedUseCase(f, rentals, f.store.Bookings(), new(MockLedger), keylock.New(time.Second))

	_, err := uc.ReturnEquipment(context.Background(), "r1")
	assert.ErrorIs(t, err, ErrAlreadyReturned)
	rentals.AssertExpectations(t)
}

func rentalErrNotActive() error {
	return fmt.Errorf("%w: id=r1", rental.ErrNotActive)
}
