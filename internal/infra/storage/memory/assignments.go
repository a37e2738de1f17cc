package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/rental"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/staffing"
)

// Rentals аренды снаряжения
type Rentals struct {
	s *Store
}

// Create сохраняет новую аренду
func (r *Rentals) Create(_ context.Context, a *domain.RentalAssignment) (*domain.RentalAssignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.rentals[a.ID]; exists {
		return nil, fmt.Errorf("%w: Create - id=%s", rental.ErrDuplicateID, a.ID)
	}

	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.s.rentals[a.ID] = *a
	r.s.rentalOrder = append(r.s.rentalOrder, a.ID)

	return a, nil
}

// GetByID получает аренду по ID
func (r *Rentals) GetByID(_ context.Context, id string) (*domain.RentalAssignment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.rentals[id]
	if !ok {
		return nil, rental.ErrAssignmentNotFound
	}
	return copyRental(a), nil
}

// ListActiveByEquipment получает активные аренды снаряжения
func (r *Rentals) ListActiveByEquipment(_ context.Context, equipmentID string) ([]*domain.RentalAssignment, error) {
	return r.list(func(a domain.RentalAssignment) bool {
		return a.EquipmentID == equipmentID && a.IsActive()
	}), nil
}

// ListByBooking получает аренды бронирования
func (r *Rentals) ListByBooking(_ context.Context, filter domain.AssignmentsFilter) ([]*domain.RentalAssignment, error) {
	return r.list(func(a domain.RentalAssignment) bool {
		return a.BookingID == filter.BookingID && (filter.IncludeHistory || a.IsActive())
	}), nil
}

func (r *Rentals) list(match func(domain.RentalAssignment) bool) []*domain.RentalAssignment {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*domain.RentalAssignment, 0)
	for _, id := range r.s.rentalOrder {
		if a := r.s.rentals[id]; match(a) {
			result = append(result, copyRental(a))
		}
	}
	return result
}

// MarkReturned переводит аренду active -> returned
func (r *Rentals) MarkReturned(_ context.Context, id string, returnedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.rentals[id]
	if !ok {
		return rental.ErrAssignmentNotFound
	}
	if !a.IsActive() {
		return rental.ErrNotActive
	}

	a.Status = domain.StatusReturned
	a.ReturnedAt = &returnedAt
	a.UpdatedAt = returnedAt
	r.s.rentals[id] = a

	return nil
}

func copyRental(a domain.RentalAssignment) *domain.RentalAssignment {
	if a.ReturnedAt != nil {
		t := *a.ReturnedAt
		a.ReturnedAt = &t
	}
	return &a
}

// StaffAssignments назначения сотрудников
type StaffAssignments struct {
	s *Store
}

// Create сохраняет новое назначение
func (r *StaffAssignments) Create(_ context.Context, a *domain.StaffAssignment) (*domain.StaffAssignment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.staffing[a.ID]; exists {
		return nil, fmt.Errorf("%w: Create - id=%s", staffing.ErrDuplicateID, a.ID)
	}

	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.s.staffing[a.ID] = *a
	r.s.staffingOrder = append(r.s.staffingOrder, a.ID)

	return a, nil
}

// GetByID получает назначение по ID
func (r *StaffAssignments) GetByID(_ context.Context, id string) (*domain.StaffAssignment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.staffing[id]
	if !ok {
		return nil, staffing.ErrAssignmentNotFound
	}
	return copyStaffAssignment(a), nil
}

// ListActiveByStaff получает активные назначения сотрудника
func (r *StaffAssignments) ListActiveByStaff(_ context.Context, staffID string) ([]*domain.StaffAssignment, error) {
	return r.list(func(a domain.StaffAssignment) bool {
		return a.StaffID == staffID && a.IsActive()
	}), nil
}

// ListByBooking получает назначения сотрудников на бронирование
func (r *StaffAssignments) ListByBooking(_ context.Context, filter domain.AssignmentsFilter) ([]*domain.StaffAssignment, error) {
	return r.list(func(a domain.StaffAssignment) bool {
		return a.BookingID == filter.BookingID && (filter.IncludeHistory || a.IsActive())
	}), nil
}

func (r *StaffAssignments) list(match func(domain.StaffAssignment) bool) []*domain.StaffAssignment {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*domain.StaffAssignment, 0)
	for _, id := range r.s.staffingOrder {
		if a := r.s.staffing[id]; match(a) {
			result = append(result, copyStaffAssignment(a))
		}
	}
	return result
}

// MarkReleased переводит назначение active -> released
func (r *StaffAssignments) MarkReleased(_ context.Context, id string, releasedAt time.Time) error {
	return r.updateActive(id, func(a *domain.StaffAssignment) {
		a.Status = domain.StatusReleased
		a.ReleasedAt = &releasedAt
		a.UpdatedAt = releasedAt
	})
}

// UpdateWindow переносит активное назначение на новое окно
func (r *StaffAssignments) UpdateWindow(_ context.Context, id string, window domain.Window, updatedAt time.Time) error {
	return r.updateActive(id, func(a *domain.StaffAssignment) {
		a.Window = window
		a.UpdatedAt = updatedAt
	})
}

func (r *StaffAssignments) updateActive(id string, apply func(a *domain.StaffAssignment)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.staffing[id]
	if !ok {
		return staffing.ErrAssignmentNotFound
	}
	if !a.IsActive() {
		return staffing.ErrNotActive
	}

	apply(&a)
	r.s.staffing[id] = a

	return nil
}

func copyStaffAssignment(a domain.StaffAssignment) *domain.StaffAssignment {
	if a.ReleasedAt != nil {
		t := *a.ReleasedAt
		a.ReleasedAt = &t
	}
	return &a
}
