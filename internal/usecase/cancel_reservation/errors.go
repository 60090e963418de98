package cancel_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrReservationNotFound возвращается, если брони не существует
	ErrReservationNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrAccessDenied возвращается при попытке отменить чужую бронь
	ErrAccessDenied = errors.New("cancel_reservation: access denied")

	// ErrAlreadyCancelled возвращается, если бронь уже отменена
	ErrAlreadyCancelled = errors.New("cancel_reservation: reservation already cancelled")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
