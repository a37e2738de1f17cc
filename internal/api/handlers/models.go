package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

// ErrInvalidWindow ошибка разбора окна из запроса
var ErrInvalidWindow = errors.New("invalid window: expected RFC 3339 windowStart and windowEnd")

// WindowDTO окно в HTTP моделях
type WindowDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RentalResponse аренда снаряжения
type RentalResponse struct {
	ID          string    `json:"id"`
	EquipmentID string    `json:"equipmentId"`
	BookingID   string    `json:"bookingId"`
	Quantity    int       `json:"quantity"`
	Window      WindowDTO `json:"window"`
	Status      string    `json:"status"`
	ReturnedAt  *string   `json:"returnedAt,omitempty"`
	CreatedAt   string    `json:"createdAt"`
	UpdatedAt   string    `json:"updatedAt"`
}

// StaffAssignmentResponse назначение сотрудника
type StaffAssignmentResponse struct {
	ID         string    `json:"id"`
	StaffID    string    `json:"staffId"`
	BookingID  string    `json:"bookingId"`
	Window     WindowDTO `json:"window"`
	Status     string    `json:"status"`
	ReleasedAt *string   `json:"releasedAt,omitempty"`
	CreatedAt  string    `json:"createdAt"`
	UpdatedAt  string    `json:"updatedAt"`
}

// InsufficientAvailabilityDetails детали отказа по ёмкости
type InsufficientAvailabilityDetails struct {
	Requested int `json:"requested"`
	Available int `json:"available"`
}

// ScheduleConflictDetails детали пересечения расписания
type ScheduleConflictDetails struct {
	ConflictingAssignmentID string    `json:"conflictingAssignmentId"`
	ConflictingWindow       WindowDTO `json:"conflictingWindow"`
}

// ParseWindow разбирает окно из строк RFC 3339.
// Обе пустые строки дают нулевое окно (окно по умолчанию).
func ParseWindow(start, end string) (domain.Window, error) {
	if start == "" && end == "" {
		return domain.Window{}, nil
	}
	if start == "" || end == "" {
		return domain.Window{}, fmt.Errorf("%w: both bounds are required", ErrInvalidWindow)
	}

	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return domain.Window{}, fmt.Errorf("%w: windowStart: %v", ErrInvalidWindow, err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return domain.Window{}, fmt.Errorf("%w: windowEnd: %v", ErrInvalidWindow, err)
	}

	return domain.NewWindow(s, e), nil
}

// FromWindow конвертирует окно в HTTP модель
func FromWindow(w domain.Window) WindowDTO {
	return WindowDTO{
		Start: w.Start.UTC().Format(domain.TimeFormat),
		End:   w.End.UTC().Format(domain.TimeFormat),
	}
}

// FromRental конвертирует аренду в HTTP модель
func FromRental(r *domain.RentalAssignment) *RentalResponse {
	return &RentalResponse{
		ID:          r.ID,
		EquipmentID: r.EquipmentID,
		BookingID:   r.BookingID,
		Quantity:    r.Quantity,
		Window:      FromWindow(r.Window),
		Status:      string(r.Status),
		ReturnedAt:  formatOptional(r.ReturnedAt),
		CreatedAt:   r.CreatedAt.UTC().Format(domain.TimeFormat),
		UpdatedAt:   r.UpdatedAt.UTC().Format(domain.TimeFormat),
	}
}

// FromStaffAssignment конвертирует назначение в HTTP модель
func FromStaffAssignment(a *domain.StaffAssignment) *StaffAssignmentResponse {
	return &StaffAssignmentResponse{
		ID:         a.ID,
		StaffID:    a.StaffID,
		BookingID:  a.BookingID,
		Window:     FromWindow(a.Window),
		Status:     string(a.Status),
		ReleasedAt: formatOptional(a.ReleasedAt),
		CreatedAt:  a.CreatedAt.UTC().Format(domain.TimeFormat),
		UpdatedAt:  a.UpdatedAt.UTC().Format(domain.TimeFormat),
	}
}

// InsufficientDetails детали для 409, если ошибка их содержит
func InsufficientDetails(err error) interface{} {
	var e *domain.InsufficientAvailabilityError
	if errors.As(err, &e) {
		return InsufficientAvailabilityDetails{Requested: e.Requested, Available: e.Available}
	}
	return nil
}

// ConflictDetails детали для 409, если ошибка их содержит
func ConflictDetails(err error) interface{} {
	var e *domain.ScheduleConflictError
	if errors.As(err, &e) {
		return ScheduleConflictDetails{
			ConflictingAssignmentID: e.ConflictingAssignmentID,
			ConflictingWindow:       FromWindow(e.ConflictingWindow),
		}
	}
	return nil
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(domain.TimeFormat)
	return &s
}
