package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/catalog"
)

// Ledger выводит занятое и свободное количество снаряжения из активных аренд.
// Состояние не кэшируется, каждый вызов читает хранилище.
type Ledger struct {
	catalog   EquipmentCatalog
	rentals   RentalRepository
	txManager TransactionManager
	logger    Logger
}

// NewLedger создает новый экземпляр Ledger
func NewLedger(catalog EquipmentCatalog, rentals RentalRepository, txManager TransactionManager, logger Logger) *Ledger {
	return &Ledger{
		catalog:   catalog,
		rentals:   rentals,
		txManager: txManager,
		logger:    logger,
	}
}

// Available возвращает stock - активные аренды по согласованному снимку.
// Блокировку на запись не берёт.
func (l *Ledger) Available(ctx context.Context, equipmentID string) (*Availability, error) {
	var result *Availability

	err := l.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		item, err := l.catalog.GetEquipment(txCtx, equipmentID)
		if err != nil {
			if errors.Is(err, catalog.ErrEquipmentNotFound) {
				return ErrEquipmentNotFound
			}
			return fmt.Errorf("%w: Available - get equipment: %w", ErrInternal, err)
		}

		held, err := l.Holdings(txCtx, equipmentID)
		if err != nil {
			return err
		}

		result = summarize(item, held)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEquipmentNotFound) {
			l.logger.Warn("Available: equipment id=%s not found", equipmentID)
		} else {
			l.logger.Error("Available: failed for equipment id=%s: %v", equipmentID, err)
		}
		return nil, err
	}

	return result, nil
}

// Holdings активные аренды снаряжения в текущей транзакции контекста
func (l *Ledger) Holdings(ctx context.Context, equipmentID string) ([]domain.Holding, error) {
	rentals, err := l.rentals.ListActiveByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: Holdings - list active rentals: %w", ErrInternal, err)
	}
	return domain.RentalHoldings(rentals), nil
}

// Admit проверяет claim против ёмкости item.
// Вызывается внутри атомарного шага, уже захватившего item.
func (l *Ledger) Admit(ctx context.Context, item *domain.EquipmentItem, claim domain.Claim) (*Availability, error) {
	held, err := l.Holdings(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	if err := item.Capacity().Admit(claim, held); err != nil {
		return summarize(item, held), err
	}

	return summarize(item, held), nil
}

func summarize(item *domain.EquipmentItem, held []domain.Holding) *Availability {
	return &Availability{
		EquipmentID: item.ID,
		InStock:     item.QuantityInStock,
		Allocated:   domain.TotalUnits(held, ""),
		Available:   item.Capacity().Free(held),
	}
}
