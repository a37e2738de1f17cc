package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/staffing"
)

// ReleaseStaff переводит назначение active -> released.
// Повторное снятие отклоняется с ErrAlreadyReleased.
func (uc *UseCase) ReleaseStaff(ctx context.Context, assignmentID string) (result *domain.StaffAssignment, err error) {
	started := time.Now()
	defer func() { uc.observe(OpReleaseStaff, started, err) }()

	uc.logger.Info("ReleaseStaff: assignment=%s", assignmentID)

	if err := validateID("assignmentId", assignmentID); err != nil {
		uc.logger.Warn("ReleaseStaff: validation failed: %v", err)
		return nil, err
	}

	current, err := uc.getStaffAssignment(ctx, "ReleaseStaff", assignmentID)
	if err != nil {
		return nil, err
	}
	if !current.IsActive() {
		uc.logger.Warn("ReleaseStaff: assignment id=%s already released", assignmentID)
		return nil, ErrAlreadyReleased
	}

	err = uc.allocator.Do(ctx, domain.StaffKey(current.StaffID), func(txCtx context.Context) error {
		now := uc.timeProvider.Now()
		if err := uc.staffAssignments.MarkReleased(txCtx, assignmentID, now); err != nil {
			return staffingError("ReleaseStaff - mark released", err)
		}

		current.Status = domain.StatusReleased
		current.ReleasedAt = &now
		current.UpdatedAt = now
		result = current
		return nil
	})

	err = classify(OpReleaseStaff, err)
	if err != nil {
		uc.logResult("ReleaseStaff", err, "assignment=%s", assignmentID)
		return nil, err
	}

	uc.logResult("ReleaseStaff", nil, "assignment id=%s released, staff=%s", result.ID, result.StaffID)
	return result, nil
}

func (uc *UseCase) getStaffAssignment(ctx context.Context, op, assignmentID string) (*domain.StaffAssignment, error) {
	current, err := uc.staffAssignments.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, staffing.ErrAssignmentNotFound) {
			uc.logger.Warn("%s: staff assignment id=%s not found", op, assignmentID)
			return nil, ErrAssignmentNotFound
		}
		uc.logger.Error("%s: failed to get staff assignment id=%s: %v", op, assignmentID, err)
		return nil, fmt.Errorf("%w: %s - get staff assignment: %w", ErrPersistence, op, err)
	}
	return current, nil
}

// staffingError переводит ошибки репозитория назначений в ошибки оркестратора
func staffingError(step string, err error) error {
	switch {
	case errors.Is(err, staffing.ErrNotActive):
		return ErrAlreadyReleased
	case errors.Is(err, staffing.ErrAssignmentNotFound):
		return ErrAssignmentNotFound
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistence, step, err)
}
