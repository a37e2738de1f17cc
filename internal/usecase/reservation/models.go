package reservation

import (
	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

// Имена операций для логов и метрик
const (
	OpReserveEquipment      = "reserve_equipment"
	OpReturnEquipment       = "return_equipment"
	OpAssignStaff           = "assign_staff"
	OpReleaseStaff          = "release_staff"
	OpRescheduleStaff       = "reschedule_staff"
	OpEquipmentAvailability = "equipment_availability"
	OpStaffAvailability     = "staff_availability"
	OpGetAssignment         = "get_assignment"
	OpBookingAssignments    = "booking_assignments"
)

// ReserveEquipmentRequest запрос на аренду снаряжения.
// Пустое окно означает окно бронирования.
type ReserveEquipmentRequest struct {
	BookingID   string
	EquipmentID string
	Quantity    int
	Window      domain.Window
}

// AssignStaffRequest запрос на назначение сотрудника.
// Пустое окно означает окно бронирования.
type AssignStaffRequest struct {
	BookingID string
	StaffID   string
	Window    domain.Window
}

// RescheduleStaffRequest запрос на перенос назначения сотрудника
type RescheduleStaffRequest struct {
	AssignmentID string
	Window       domain.Window
}

// StaffAvailabilityRequest запрос проверки окна сотрудника
type StaffAvailabilityRequest struct {
	StaffID             string
	Window              domain.Window
	ExcludeAssignmentID string
}

// EquipmentAvailability свободное количество снаряжения
type EquipmentAvailability struct {
	EquipmentID string
	InStock     int
	Allocated   int
	Available   int
}

// StaffAvailability результат проверки окна сотрудника
type StaffAvailability struct {
	StaffID     string
	Window      domain.Window
	Free        bool
	Conflicting *domain.Holding
}

// BookingAssignments назначения, привязанные к бронированию
type BookingAssignments struct {
	BookingID string
	Rentals   []*domain.RentalAssignment
	Staff     []*domain.StaffAssignment
}
