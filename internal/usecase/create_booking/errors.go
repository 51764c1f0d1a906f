package create_booking

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrTreatmentNotFound возвращается, когда процедура не найдена
	ErrTreatmentNotFound = errors.New("treatment not found")

	// ErrTreatmentInactive возвращается, когда процедура снята с продажи
	ErrTreatmentInactive = errors.New("treatment is not active")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrTooLateToBook возвращается при нарушении минимального времени до записи
	ErrTooLateToBook = errors.New("too late to book this slot")

	// ErrOutsideBusinessHours возвращается, когда запись не укладывается в окно расписания
	ErrOutsideBusinessHours = errors.New("booking is outside business hours")

	// ErrSlotNotAvailable возвращается, когда у мастера нет свободных мест на это время
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
