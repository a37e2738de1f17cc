package reserve_equipment

import (
	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

// ReserveEquipmentRequest HTTP request model.
// windowStart/windowEnd можно не указывать - используется окно бронирования.
type ReserveEquipmentRequest struct {
	BookingID   string `json:"bookingId"`
	EquipmentID string `json:"equipmentId"`
	Quantity    int    `json:"quantity"`
	WindowStart string `json:"windowStart,omitempty"` // "2024-12-26T10:00:00Z"
	WindowEnd   string `json:"windowEnd,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveEquipmentRequest) ToUseCaseRequest() (*reservation.ReserveEquipmentRequest, error) {
	window, err := handlers.ParseWindow(r.WindowStart, r.WindowEnd)
	if err != nil {
		return nil, err
	}

	return &reservation.ReserveEquipmentRequest{
		BookingID:   r.BookingID,
		EquipmentID: r.EquipmentID,
		Quantity:    r.Quantity,
		Window:      window,
	}, nil
}
