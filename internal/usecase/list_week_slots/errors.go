package list_week_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("list_week_slots: invalid input data")

	// ErrNoTimeLabels возвращается при пустом списке временных меток.
	// Генерация сетки с пустой конфигурацией - ошибка программирования.
	ErrNoTimeLabels = errors.New("list_week_slots: schedule has no time labels")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_week_slots: internal error")
)
