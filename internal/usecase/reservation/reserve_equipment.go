package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/catalog"
)

// ReserveEquipment выдаёт quantity единиц снаряжения под бронирование.
// Доступность перепроверяется внутри атомарного шага вместе с записью аренды.
func (uc *UseCase) ReserveEquipment(ctx context.Context, req *ReserveEquipmentRequest) (result *domain.RentalAssignment, err error) {
	started := time.Now()
	defer func() { uc.observe(OpReserveEquipment, started, err) }()

	uc.logger.Info("ReserveEquipment: booking=%s, equipment=%s, quantity=%d, window=%s",
		req.BookingID, req.EquipmentID, req.Quantity, req.Window)

	// 1. Валидация до любого обращения к состоянию
	if err := validateReserveEquipment(req); err != nil {
		uc.logger.Warn("ReserveEquipment: validation failed: %v", err)
		return nil, err
	}

	// 2. Бронирование и окно по умолчанию
	window, err := uc.resolveBooking(ctx, "ReserveEquipment", req.BookingID, req.Window)
	if err != nil {
		return nil, err
	}

	// 3. Проверка и запись под блокировкой снаряжения
	err = uc.allocator.Do(ctx, domain.EquipmentKey(req.EquipmentID), func(txCtx context.Context) error {
		item, err := uc.catalog.LockEquipment(txCtx, req.EquipmentID)
		if err != nil {
			if errors.Is(err, catalog.ErrEquipmentNotFound) {
				return ErrEquipmentNotFound
			}
			return fmt.Errorf("%w: ReserveEquipment - lock equipment: %w", ErrPersistence, err)
		}

		if !item.Rentable {
			return fmt.Errorf("%w: equipment id=%s", ErrNotRentable, item.ID)
		}

		claim := domain.Claim{Units: req.Quantity, Window: window}
		state, err := uc.ledger.Admit(txCtx, item, claim)
		if err != nil {
			if IsRejection(err) {
				return err
			}
			return fmt.Errorf("%w: ReserveEquipment - check availability: %w", ErrPersistence, err)
		}

		uc.logger.Info("ReserveEquipment: equipment=%s has %d/%d available", item.ID, state.Available, state.InStock)

		rental := &domain.RentalAssignment{
			ID:          uc.ids.NewID(),
			EquipmentID: item.ID,
			BookingID:   req.BookingID,
			Quantity:    req.Quantity,
			Window:      window,
			Status:      domain.StatusActive,
		}

		created, err := uc.rentals.Create(txCtx, rental)
		if err != nil {
			return fmt.Errorf("%w: ReserveEquipment - create rental: %w", ErrPersistence, err)
		}

		result = created
		return nil
	})

	err = classify(OpReserveEquipment, err)
	if err != nil {
		uc.logResult("ReserveEquipment", err, "booking=%s, equipment=%s, quantity=%d", req.BookingID, req.EquipmentID, req.Quantity)
		return nil, err
	}

	uc.logResult("ReserveEquipment", nil, "created rental id=%s, equipment=%s, quantity=%d", result.ID, result.EquipmentID, result.Quantity)
	return result, nil
}
