package get_booking_assignments

import (
	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

// BookingAssignmentsResponse аренды и назначения сотрудников бронирования
type BookingAssignmentsResponse struct {
	BookingID string                              `json:"bookingId"`
	Rentals   []*handlers.RentalResponse          `json:"rentals"`
	Staff     []*handlers.StaffAssignmentResponse `json:"staff"`
}

func FromUseCase(a *reservation.BookingAssignments) *BookingAssignmentsResponse {
	resp := &BookingAssignmentsResponse{
		BookingID: a.BookingID,
		Rentals:   make([]*handlers.RentalResponse, 0, len(a.Rentals)),
		Staff:     make([]*handlers.StaffAssignmentResponse, 0, len(a.Staff)),
	}
	for _, r := range a.Rentals {
		resp.Rentals = append(resp.Rentals, handlers.FromRental(r))
	}
	for _, s := range a.Staff {
		resp.Staff = append(resp.Staff, handlers.FromStaffAssignment(s))
	}
	return resp
}
