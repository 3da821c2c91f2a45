package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, когда открытие не раньше закрытия
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidInterval возвращается при недопустимом интервале слотов
	ErrInvalidInterval = errors.New("invalid slot interval")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
