package reports

import "errors"

var (
	// ErrInvalidPeriod возвращается при некорректном отчётном периоде
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
