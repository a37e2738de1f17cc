package rental

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда аренда не найдена
	ErrAssignmentNotFound = errors.New("rental.repository: rental assignment not found")

	// ErrNotActive возвращается при попытке изменить уже возвращённую аренду
	ErrNotActive = errors.New("rental.repository: rental assignment is not active")

	// ErrDuplicateID возвращается, если аренда с таким ID уже существует
	ErrDuplicateID = errors.New("rental.repository: duplicate rental assignment id")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rental.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rental.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rental.repository: failed to scan row")
)
