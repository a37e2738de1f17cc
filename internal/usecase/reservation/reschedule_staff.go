package reservation

import (
	"context"
	"time"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

// RescheduleStaff переносит активное назначение на новое окно на месте.
// Проверка пересечений исключает само назначение; слот не освобождается даже на время переноса.
func (uc *UseCase) RescheduleStaff(ctx context.Context, req *RescheduleStaffRequest) (result *domain.StaffAssignment, err error) {
	started := time.Now()
	defer func() { uc.observe(OpRescheduleStaff, started, err) }()

	uc.logger.Info("RescheduleStaff: assignment=%s, window=%s", req.AssignmentID, req.Window)

	if err := validateRescheduleStaff(req); err != nil {
		uc.logger.Warn("RescheduleStaff: validation failed: %v", err)
		return nil, err
	}
	window := req.Window.UTC()

	current, err := uc.getStaffAssignment(ctx, "RescheduleStaff", req.AssignmentID)
	if err != nil {
		return nil, err
	}
	if !current.IsActive() {
		uc.logger.Warn("RescheduleStaff: assignment id=%s already released", req.AssignmentID)
		return nil, ErrAlreadyReleased
	}

	err = uc.allocator.Do(ctx, domain.StaffKey(current.StaffID), func(txCtx context.Context) error {
		member, err := uc.lockStaff(txCtx, "RescheduleStaff", current.StaffID)
		if err != nil {
			return err
		}

		// Состояние могло измениться, пока ждали блокировку
		fresh, err := uc.staffAssignments.GetByID(txCtx, req.AssignmentID)
		if err != nil {
			return staffingError("RescheduleStaff - reload assignment", err)
		}
		if !fresh.IsActive() {
			return ErrAlreadyReleased
		}

		claim := domain.Claim{Units: 1, Window: window, ExcludeAssignmentID: fresh.ID}
		if err := uc.detector.Admit(txCtx, member, claim); err != nil {
			if IsRejection(err) {
				return err
			}
			return staffingError("RescheduleStaff - check schedule", err)
		}

		now := uc.timeProvider.Now()
		if err := uc.staffAssignments.UpdateWindow(txCtx, fresh.ID, window, now); err != nil {
			return staffingError("RescheduleStaff - update window", err)
		}

		fresh.Window = window
		fresh.UpdatedAt = now
		result = fresh
		return nil
	})

	err = classify(OpRescheduleStaff, err)
	if err != nil {
		uc.logResult("RescheduleStaff", err, "assignment=%s", req.AssignmentID)
		return nil, err
	}

	uc.logResult("RescheduleStaff", nil, "assignment id=%s moved to %s", result.ID, result.Window)
	return result, nil
}
