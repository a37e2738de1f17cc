package schedule

import "github.com/m04kA/DiveOps-ReservationEngine/internal/domain"

// Conflict результат проверки окна сотрудника.
// Conflicting заполнен, только если HasConflict.
type Conflict struct {
	StaffID     string
	Window      domain.Window
	HasConflict bool
	Conflicting *domain.Holding
}
