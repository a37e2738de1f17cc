package availability

import "errors"

var (
	// ErrEquipmentNotFound возвращается, когда позиция снаряжения не найдена
	ErrEquipmentNotFound = errors.New("availability: equipment not found")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("availability: internal error")
)
