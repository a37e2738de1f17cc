package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/service/availability"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/service/schedule"
)

// EquipmentAvailability возвращает свободное количество снаряжения
func (uc *UseCase) EquipmentAvailability(ctx context.Context, equipmentID string) (result *EquipmentAvailability, err error) {
	started := time.Now()
	defer func() {
		err = classify(OpEquipmentAvailability, err)
		uc.observe(OpEquipmentAvailability, started, err)
	}()

	if err := validateID("equipmentId", equipmentID); err != nil {
		return nil, err
	}

	state, err := uc.ledger.Available(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, availability.ErrEquipmentNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("%w: EquipmentAvailability: %w", ErrPersistence, err)
	}

	return &EquipmentAvailability{
		EquipmentID: state.EquipmentID,
		InStock:     state.InStock,
		Allocated:   state.Allocated,
		Available:   state.Available,
	}, nil
}

// StaffAvailability проверяет, свободен ли сотрудник в окне
func (uc *UseCase) StaffAvailability(ctx context.Context, req *StaffAvailabilityRequest) (result *StaffAvailability, err error) {
	started := time.Now()
	defer func() {
		err = classify(OpStaffAvailability, err)
		uc.observe(OpStaffAvailability, started, err)
	}()

	if err := validateStaffAvailability(req); err != nil {
		return nil, err
	}
	window := req.Window.UTC()

	conflict, err := uc.detector.HasConflict(ctx, req.StaffID, window, req.ExcludeAssignmentID)
	if err != nil {
		if errors.Is(err, schedule.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("%w: StaffAvailability: %w", ErrPersistence, err)
	}

	return &StaffAvailability{
		StaffID:     req.StaffID,
		Window:      window,
		Free:        !conflict.HasConflict,
		Conflicting: conflict.Conflicting,
	}, nil
}

// GetRental возвращает аренду по ID
func (uc *UseCase) GetRental(ctx context.Context, assignmentID string) (result *domain.RentalAssignment, err error) {
	started := time.Now()
	defer func() {
		err = classify(OpGetAssignment, err)
		uc.observe(OpGetAssignment, started, err)
	}()

	if err := validateID("assignmentId", assignmentID); err != nil {
		return nil, err
	}
	return uc.getRental(ctx, "GetRental", assignmentID)
}

// GetStaffAssignment возвращает назначение сотрудника по ID
func (uc *UseCase) GetStaffAssignment(ctx context.Context, assignmentID string) (result *domain.StaffAssignment, err error) {
	started := time.Now()
	defer func() {
		err = classify(OpGetAssignment, err)
		uc.observe(OpGetAssignment, started, err)
	}()

	if err := validateID("assignmentId", assignmentID); err != nil {
		return nil, err
	}
	return uc.getStaffAssignment(ctx, "GetStaffAssignment", assignmentID)
}

// BookingAssignments возвращает аренды и назначения сотрудников бронирования.
// includeHistory добавляет возвращённые и снятые.
func (uc *UseCase) BookingAssignments(ctx context.Context, bookingID string, includeHistory bool) (result *BookingAssignments, err error) {
	started := time.Now()
	defer func() {
		err = classify(OpBookingAssignments, err)
		uc.observe(OpBookingAssignments, started, err)
	}()

	if err := validateID("bookingId", bookingID); err != nil {
		return nil, err
	}

	if _, err := uc.getBooking(ctx, "BookingAssignments", bookingID); err != nil {
		return nil, err
	}

	filter := domain.AssignmentsFilter{BookingID: bookingID, IncludeHistory: includeHistory}

	rentals, err := uc.rentals.ListByBooking(ctx, filter)
	if err != nil {
		uc.logger.Error("BookingAssignments: failed to list rentals for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: BookingAssignments - list rentals: %w", ErrPersistence, err)
	}

	staff, err := uc.staffAssignments.ListByBooking(ctx, filter)
	if err != nil {
		uc.logger.Error("BookingAssignments: failed to list staff assignments for booking=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: BookingAssignments - list staff assignments: %w", ErrPersistence, err)
	}

	uc.logger.Info("BookingAssignments: booking=%s has %d rentals, %d staff assignments", bookingID, len(rentals), len(staff))
	return &BookingAssignments{BookingID: bookingID, Rentals: rentals, Staff: staff}, nil
}
