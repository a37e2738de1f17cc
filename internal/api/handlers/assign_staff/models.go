package assign_staff

import (
	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

// AssignStaffRequest HTTP request model
type AssignStaffRequest struct {
	BookingID   string `json:"bookingId"`
	StaffID     string `json:"staffId"`
	WindowStart string `json:"windowStart,omitempty"`
	WindowEnd   string `json:"windowEnd,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AssignStaffRequest) ToUseCaseRequest() (*reservation.AssignStaffRequest, error) {
	window, err := handlers.ParseWindow(r.WindowStart, r.WindowEnd)
	if err != nil {
		return nil, err
	}

	return &reservation.AssignStaffRequest{
		BookingID: r.BookingID,
		StaffID:   r.StaffID,
		Window:    window,
	}, nil
}
