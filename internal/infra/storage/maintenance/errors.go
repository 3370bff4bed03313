package maintenance

import "errors"

var (
	// ErrDateNotFound возвращается, когда дата не найдена
	ErrDateNotFound = errors.New("maintenance.repository: maintenance date not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("maintenance.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("maintenance.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("maintenance.repository: failed to scan row")
)
