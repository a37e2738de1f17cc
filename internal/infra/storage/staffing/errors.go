package staffing

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда назначение сотрудника не найдено
	ErrAssignmentNotFound = errors.New("staffing.repository: staff assignment not found")

	// ErrNotActive возвращается при попытке изменить уже снятое назначение
	ErrNotActive = errors.New("staffing.repository: staff assignment is not active")

	// ErrDuplicateID возвращается, если назначение с таким ID уже существует
	ErrDuplicateID = errors.New("staffing.repository: duplicate staff assignment id")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("staffing.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("staffing.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("staffing.repository: failed to scan row")
)
