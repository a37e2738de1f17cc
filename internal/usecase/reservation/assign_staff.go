package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/catalog"
)

// AssignStaff назначает сотрудника на бронирование.
// Проверка пересечений и запись выполняются одним атомарным шагом по сотруднику.
func (uc *UseCase) AssignStaff(ctx context.Context, req *AssignStaffRequest) (result *domain.StaffAssignment, err error) {
	started := time.Now()
	defer func() { uc.observe(OpAssignStaff, started, err) }()

	uc.logger.Info("AssignStaff: booking=%s, staff=%s, window=%s", req.BookingID, req.StaffID, req.Window)

	if err := validateAssignStaff(req); err != nil {
		uc.logger.Warn("AssignStaff: validation failed: %v", err)
		return nil, err
	}

	window, err := uc.resolveBooking(ctx, "AssignStaff", req.BookingID, req.Window)
	if err != nil {
		return nil, err
	}

	err = uc.allocator.Do(ctx, domain.StaffKey(req.StaffID), func(txCtx context.Context) error {
		member, err := uc.lockStaff(txCtx, "AssignStaff", req.StaffID)
		if err != nil {
			return err
		}

		if !member.IsAvailable() {
			return fmt.Errorf("%w: staff id=%s", ErrStaffUnavailable, member.ID)
		}
		if !member.CertifiedThrough(window.End) {
			return fmt.Errorf("%w: staff id=%s, expiry=%s, window end=%s", ErrCertificationExpired,
				member.ID, member.CertificationExpiry.Format(domain.DateFormat), window.End.Format(domain.TimeFormat))
		}

		if err := uc.detector.Admit(txCtx, member, domain.Claim{Units: 1, Window: window}); err != nil {
			if IsRejection(err) {
				return err
			}
			return fmt.Errorf("%w: AssignStaff - check schedule: %w", ErrPersistence, err)
		}

		assignment := &domain.StaffAssignment{
			ID:        uc.ids.NewID(),
			StaffID:   member.ID,
			BookingID: req.BookingID,
			Window:    window,
			Status:    domain.StatusActive,
		}

		created, err := uc.staffAssignments.Create(txCtx, assignment)
		if err != nil {
			return fmt.Errorf("%w: AssignStaff - create assignment: %w", ErrPersistence, err)
		}

		result = created
		return nil
	})

	err = classify(OpAssignStaff, err)
	if err != nil {
		uc.logResult("AssignStaff", err, "booking=%s, staff=%s", req.BookingID, req.StaffID)
		return nil, err
	}

	uc.logResult("AssignStaff", nil, "created assignment id=%s, staff=%s, window=%s", result.ID, result.StaffID, result.Window)
	return result, nil
}

func (uc *UseCase) lockStaff(ctx context.Context, op, staffID string) (*domain.StaffMember, error) {
	member, err := uc.catalog.LockStaff(ctx, staffID)
	if err != nil {
		if errors.Is(err, catalog.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("%w: %s - lock staff: %w", ErrPersistence, op, err)
	}
	return member, nil
}
