package domain

import "time"

// AssignmentStatus статус назначения ресурса
type AssignmentStatus string

const (
	StatusActive   AssignmentStatus = "active"
	StatusReturned AssignmentStatus = "returned" // терминальный для аренды
	StatusReleased AssignmentStatus = "released" // терминальный для назначения сотрудника
)

// RentalAssignment аренда единиц снаряжения под бронирование.
// Создаётся в active, переходит в returned ровно один раз.
type RentalAssignment struct {
	ID          string
	EquipmentID string
	BookingID   string
	Quantity    int
	Window      Window
	Status      AssignmentStatus
	ReturnedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive true, пока аренда не возвращена
func (r *RentalAssignment) IsActive() bool {
	return r.Status == StatusActive
}

// Holding представление аренды для правил распределения
func (r *RentalAssignment) Holding() Holding {
	return Holding{AssignmentID: r.ID, Units: r.Quantity, Window: r.Window}
}

// StaffAssignment назначение сотрудника на бронирование.
// Создаётся в active, переходит в released ровно один раз.
type StaffAssignment struct {
	ID         string
	StaffID    string
	BookingID  string
	Window     Window
	Status     AssignmentStatus
	ReleasedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive true, пока назначение не снято
func (s *StaffAssignment) IsActive() bool {
	return s.Status == StatusActive
}

// Holding представление назначения для правил распределения
func (s *StaffAssignment) Holding() Holding {
	return Holding{AssignmentID: s.ID, Units: 1, Window: s.Window}
}

// RentalHoldings активные аренды в виде занятий ресурса
func RentalHoldings(rentals []*RentalAssignment) []Holding {
	held := make([]Holding, 0, len(rentals))
	for _, r := range rentals {
		if r.IsActive() {
			held = append(held, r.Holding())
		}
	}
	return held
}

// StaffHoldings активные назначения в виде занятий ресурса
func StaffHoldings(assignments []*StaffAssignment) []Holding {
	held := make([]Holding, 0, len(assignments))
	for _, a := range assignments {
		if a.IsActive() {
			held = append(held, a.Holding())
		}
	}
	return held
}

// AssignmentsFilter фильтр назначений
type AssignmentsFilter struct {
	BookingID      string
	IncludeHistory bool // включать возвращённые / снятые назначения
}
