package get_equipment_availability

import "github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"

// AvailabilityResponse свободное количество единицы снаряжения
type AvailabilityResponse struct {
	EquipmentID string `json:"equipmentId"`
	InStock     int    `json:"inStock"`
	Allocated   int    `json:"allocated"`
	Available   int    `json:"available"`
}

func FromUseCase(a *reservation.EquipmentAvailability) *AvailabilityResponse {
	return &AvailabilityResponse{
		EquipmentID: a.EquipmentID,
		InStock:     a.InStock,
		Allocated:   a.Allocated,
		Available:   a.Available,
	}
}
