package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/catalog"
)

// Detector ищет пересечения окна с активными назначениями сотрудника.
// Пересечение полуинтервальное: [10:00, 14:00) и [14:00, 16:00) не конфликтуют.
type Detector struct {
	catalog     StaffCatalog
	assignments StaffAssignmentRepository
	txManager   TransactionManager
	logger      Logger
}

// NewDetector создает новый экземпляр Detector
func NewDetector(catalog StaffCatalog, assignments StaffAssignmentRepository, txManager TransactionManager, logger Logger) *Detector {
	return &Detector{
		catalog:     catalog,
		assignments: assignments,
		txManager:   txManager,
		logger:      logger,
	}
}

// HasConflict проверяет окно по согласованному снимку без блокировки на запись.
// excludeAssignmentID не учитывается (перенос существующего назначения).
func (d *Detector) HasConflict(ctx context.Context, staffID string, window domain.Window, excludeAssignmentID string) (*Conflict, error) {
	var result *Conflict

	err := d.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		if _, err := d.catalog.GetStaff(txCtx, staffID); err != nil {
			if errors.Is(err, catalog.ErrStaffNotFound) {
				return ErrStaffNotFound
			}
			return fmt.Errorf("%w: HasConflict - get staff: %w", ErrInternal, err)
		}

		conflict, err := d.Find(txCtx, staffID, window, excludeAssignmentID)
		if err != nil {
			return err
		}
		result = conflict
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrStaffNotFound) {
			d.logger.Warn("HasConflict: staff id=%s not found", staffID)
		} else {
			d.logger.Error("HasConflict: failed for staff id=%s: %v", staffID, err)
		}
		return nil, err
	}

	return result, nil
}

// Find ищет пересечение в текущей транзакции контекста
func (d *Detector) Find(ctx context.Context, staffID string, window domain.Window, excludeAssignmentID string) (*Conflict, error) {
	held, err := d.Holdings(ctx, staffID)
	if err != nil {
		return nil, err
	}

	result := &Conflict{StaffID: staffID, Window: window}
	if h, ok := domain.FindOverlap(window, held, excludeAssignmentID); ok {
		result.HasConflict = true
		result.Conflicting = &h
	}
	return result, nil
}

// Holdings активные назначения сотрудника
func (d *Detector) Holdings(ctx context.Context, staffID string) ([]domain.Holding, error) {
	assignments, err := d.assignments.ListActiveByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("%w: Holdings - list active assignments: %w", ErrInternal, err)
	}
	return domain.StaffHoldings(assignments), nil
}

// Admit проверяет claim против расписания member.
// Вызывается внутри атомарного шага, уже захватившего сотрудника.
func (d *Detector) Admit(ctx context.Context, member *domain.StaffMember, claim domain.Claim) error {
	held, err := d.Holdings(ctx, member.ID)
	if err != nil {
		return err
	}
	return member.Exclusivity().Admit(claim, held)
}
