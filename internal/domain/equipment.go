package domain

import "time"

// EquipmentItem позиция каталога снаряжения.
// QuantityInStock - ёмкость, меняется только управлением каталогом, но не резервированиями.
type EquipmentItem struct {
	ID              string
	Name            string
	Category        string
	QuantityInStock int
	Rentable        bool
	DailyRentRate   float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Capacity правило распределения единиц снаряжения
func (e *EquipmentItem) Capacity() CapacityPolicy {
	return CapacityPolicy{Capacity: e.QuantityInStock}
}
