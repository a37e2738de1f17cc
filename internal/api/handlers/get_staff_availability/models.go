package get_staff_availability

import (
	"github.com/m04kA/DiveOps-ReservationEngine/internal/api/handlers"
	"github.com/m04kA/DiveOps-ReservationEngine/internal/usecase/reservation"
)

// ConflictingAssignment активное назначение, пересекающее запрошенное окно
type ConflictingAssignment struct {
	AssignmentID string             `json:"assignmentId"`
	Window       handlers.WindowDTO `json:"window"`
}

// AvailabilityResponse результат проверки окна сотрудника
type AvailabilityResponse struct {
	StaffID     string                 `json:"staffId"`
	Window      handlers.WindowDTO     `json:"window"`
	Free        bool                   `json:"free"`
	Conflicting *ConflictingAssignment `json:"conflicting,omitempty"`
}

func FromUseCase(a *reservation.StaffAvailability) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		StaffID: a.StaffID,
		Window:  handlers.FromWindow(a.Window),
		Free:    a.Free,
	}
	if a.Conflicting != nil {
		resp.Conflicting = &ConflictingAssignment{
			AssignmentID: a.Conflicting.AssignmentID,
			Window:       handlers.FromWindow(a.Conflicting.Window),
		}
	}
	return resp
}
