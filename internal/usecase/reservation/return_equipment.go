package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/rental"
)

// ReturnEquipment переводит аренду active -> returned.
// Повторный возврат отклоняется с ErrAlreadyReturned.
func (uc *UseCase) ReturnEquipment(ctx context.Context, assignmentID string) (result *domain.RentalAssignment, err error) {
	started := time.Now()
	defer func() { uc.observe(OpReturnEquipment, started, err) }()

	uc.logger.Info("ReturnEquipment: rental=%s", assignmentID)

	if err := validateID("assignmentId", assignmentID); err != nil {
		uc.logger.Warn("ReturnEquipment: validation failed: %v", err)
		return nil, err
	}

	current, err := uc.getRental(ctx, "ReturnEquipment", assignmentID)
	if err != nil {
		return nil, err
	}
	if !current.IsActive() {
		uc.logger.Warn("ReturnEquipment: rental id=%s already returned", assignmentID)
		return nil, ErrAlreadyReturned
	}

	// Возврат меняет доступность снаряжения, поэтому идёт под его ключом
	err = uc.allocator.Do(ctx, domain.EquipmentKey(current.EquipmentID), func(txCtx context.Context) error {
		now := uc.timeProvider.Now()
		if err := uc.rentals.MarkReturned(txCtx, assignmentID, now); err != nil {
			switch {
			case errors.Is(err, rental.ErrNotActive):
				return ErrAlreadyReturned
			case errors.Is(err, rental.ErrAssignmentNotFound):
				return ErrAssignmentNotFound
			}
			return fmt.Errorf("%w: ReturnEquipment - mark returned: %w", ErrPersistence, err)
		}

		current.Status = domain.StatusReturned
		current.ReturnedAt = &now
		current.UpdatedAt = now
		result = current
		return nil
	})

	err = classify(OpReturnEquipment, err)
	if err != nil {
		uc.logResult("ReturnEquipment", err, "rental=%s", assignmentID)
		return nil, err
	}

	uc.logResult("ReturnEquipment", nil, "rental id=%s returned, equipment=%s, quantity=%d",
		result.ID, result.EquipmentID, result.Quantity)
	return result, nil
}

func (uc *UseCase) getRental(ctx context.Context, op, assignmentID string) (*domain.RentalAssignment, error) {
	current, err := uc.rentals.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, rental.ErrAssignmentNotFound) {
			uc.logger.Warn("%s: rental id=%s not found", op, assignmentID)
			return nil, ErrAssignmentNotFound
		}
		uc.logger.Error("%s: failed to get rental id=%s: %v", op, assignmentID, err)
		return nil, fmt.Errorf("%w: %s - get rental: %w", ErrPersistence, op, err)
	}
	return current, nil
}
