package reserve_slot

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reserve_slot: invalid input data")

	// ErrInvalidSlotID возвращается при некорректном формате ID слота
	ErrInvalidSlotID = errors.New("reserve_slot: invalid slot id")

	// ErrSlotNotFree возвращается при попытке забронировать слот,
	// который не находится в статусе free
	ErrSlotNotFree = errors.New("reserve_slot: slot is not free")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reserve_slot: internal error")
)

// FieldErrors ошибки валидации формы бронирования, по одной на поле.
// Возвращаются целиком, чтобы клиент показал все сообщения сразу;
// никакие мутации при этом не выполняются.
type FieldErrors map[string]string

// Error реализует интерфейс error
func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("reserve_slot: validation failed: %s", strings.Join(fields, ", "))
}

// AsFieldErrors извлекает FieldErrors из ошибки, если она там есть
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, true
	}
	return nil, false
}
