package get_available_slots

import "errors"

var (
	// ErrTreatmentNotFound возвращается, когда процедура не найдена
	ErrTreatmentNotFound = errors.New("treatment not found")

	// ErrTreatmentInactive возвращается, когда процедура снята с продажи
	ErrTreatmentInactive = errors.New("treatment is not active")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
