package schedule

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("schedule: staff member not found")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("schedule: internal error")
)
