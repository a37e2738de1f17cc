package memory

import (
	"context"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/infra/storage/catalog"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/integrations/bookingservice"
)

// Catalog каталог снаряжения и сотрудников
type Catalog struct {
	s *Store
}

// GetEquipment получает позицию снаряжения по ID
func (c *Catalog) GetEquipment(_ context.Context, id string) (*domain.EquipmentItem, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	item, ok := c.s.equipment[id]
	if !ok {
		return nil, catalog.ErrEquipmentNotFound
	}
	return &item, nil
}

// LockEquipment в памяти совпадает с GetEquipment: строку сериализует блокировка по ключу ресурса
func (c *Catalog) LockEquipment(ctx context.Context, id string) (*domain.EquipmentItem, error) {
	return c.GetEquipment(ctx, id)
}

// GetStaff получает сотрудника по ID
func (c *Catalog) GetStaff(_ context.Context, id string) (*domain.StaffMember, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	member, ok := c.s.staff[id]
	if !ok {
		return nil, catalog.ErrStaffNotFound
	}
	if member.CertificationExpiry != nil {
		expiry := *member.CertificationExpiry
		member.CertificationExpiry = &expiry
	}
	return &member, nil
}

// LockStaff в памяти совпадает с GetStaff
func (c *Catalog) LockStaff(ctx context.Context, id string) (*domain.StaffMember, error) {
	return c.GetStaff(ctx, id)
}

// Bookings бронирования, загруженные из seed-файла
type Bookings struct {
	s *Store
}

// GetBooking получает бронирование по ID
func (b *Bookings) GetBooking(_ context.Context, id string) (*domain.Booking, error) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()

	booking, ok := b.s.bookings[id]
	if !ok {
		return nil, bookingservice.ErrBookingNotFound
	}
	return &booking, nil
}
