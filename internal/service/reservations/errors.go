package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidTransition возвращается при попытке сменить статус не из pending
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrReservationNotConfirmed возвращается при экспорте события
	// для неподтверждённого бронирования
	ErrReservationNotConfirmed = errors.New("reservation not confirmed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
