package toggle_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("toggle_slot: invalid input data")

	// ErrInvalidSlotID возвращается при некорректном формате ID слота
	ErrInvalidSlotID = errors.New("toggle_slot: invalid slot id")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("toggle_slot: internal error")
)
