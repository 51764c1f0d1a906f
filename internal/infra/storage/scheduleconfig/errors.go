package scheduleconfig

import "errors"

var (
	// ErrWindowNotFound возвращается, когда окно расписания не найдено
	ErrWindowNotFound = errors.New("scheduleconfig.repository: schedule window not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("scheduleconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("scheduleconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("scheduleconfig.repository: failed to scan row")
)
