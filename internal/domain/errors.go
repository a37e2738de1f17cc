package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindow возвращается для пустого, перевёрнутого или слишком длинного окна
	ErrInvalidWindow = errors.New("domain: invalid time window")

	// ErrInsufficientAvailability запрошено больше единиц, чем свободно
	ErrInsufficientAvailability = errors.New("domain: insufficient availability")

	// ErrScheduleConflict окно пересекается с активным назначением того же сотрудника
	ErrScheduleConflict = errors.New("domain: schedule conflict")
)

// InsufficientAvailabilityError детали отказа по ёмкости
type InsufficientAvailabilityError struct {
	Requested int
	Available int
}

func (e *InsufficientAvailabilityError) Error() string {
	return fmt.Sprintf("%v: requested %d, available %d", ErrInsufficientAvailability, e.Requested, e.Available)
}

func (e *InsufficientAvailabilityError) Unwrap() error {
	return ErrInsufficientAvailability
}

// ScheduleConflictError детали пересечения с существующим назначением
type ScheduleConflictError struct {
	ConflictingAssignmentID string
	ConflictingWindow       Window
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("%v: overlaps assignment %s %s", ErrScheduleConflict, e.ConflictingAssignmentID, e.ConflictingWindow)
}

func (e *ScheduleConflictError) Unwrap() error {
	return ErrScheduleConflict
}
