package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не сохранён в хранилище.
	// Отсутствие записи не является ошибкой уровня сервиса: слот без записи
	// считается заблокированным по умолчанию, решение принимает вызывающий.
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
