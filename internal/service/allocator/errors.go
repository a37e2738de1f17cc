package allocator

import "errors"

var (
	// ErrResourceBusy блокировку ресурса не удалось получить за отведённое время
	// или дедлайн вызывающего истёк во время ожидания. Операцию можно повторить.
	ErrResourceBusy = errors.New("allocator: resource is busy")
)
