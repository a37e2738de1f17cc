package reservation

import (
	"fmt"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

// validateID проверяет идентификатор ресурса, бронирования или назначения
func validateID(field, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if len(id) > domain.MaxIDLength {
		return fmt.Errorf("%w: %s is longer than %d characters", ErrInvalidInput, field, domain.MaxIDLength)
	}
	return nil
}

// validateWindow проверяет окно. Пустое окно допустимо, если optional.
func validateWindow(w domain.Window, optional bool) error {
	if optional && w.IsZero() {
		return nil
	}
	if err := w.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func validateReserveEquipment(req *ReserveEquipmentRequest) error {
	if err := validateID("bookingId", req.BookingID); err != nil {
		return err
	}
	if err := validateID("equipmentId", req.EquipmentID); err != nil {
		return err
	}
	if req.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidInput, req.Quantity)
	}
	return validateWindow(req.Window, true)
}

func validateAssignStaff(req *AssignStaffRequest) error {
	if err := validateID("bookingId", req.BookingID); err != nil {
		return err
	}
	if err := validateID("staffId", req.StaffID); err != nil {
		return err
	}
	return validateWindow(req.Window, true)
}

func validateRescheduleStaff(req *RescheduleStaffRequest) error {
	if err := validateID("assignmentId", req.AssignmentID); err != nil {
		return err
	}
	return validateWindow(req.Window, false)
}

func validateStaffAvailability(req *StaffAvailabilityRequest) error {
	if err := validateID("staffId", req.StaffID); err != nil {
		return err
	}
	if req.ExcludeAssignmentID != "" {
		if err := validateID("excludeAssignmentId", req.ExcludeAssignmentID); err != nil {
			return err
		}
	}
	return validateWindow(req.Window, false)
}
