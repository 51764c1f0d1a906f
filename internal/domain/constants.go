package domain

// Default schedule window values
const (
	DefaultStartHour               = 9
	DefaultEndHour                 = 19
	DefaultMinutesPerPixel         = 1
	DefaultColumnScope             = ColumnScopeDay
	DefaultSlotStepMinutes         = 30
	DefaultMaxConcurrentBookings   = 1
	DefaultAdvanceBookingDays      = 0  // 0 = unlimited
	DefaultMinBookingNoticeMinutes = 60 // 1 hour
)

// Business validation constants
const (
	MinStartHour                = 0
	MaxEndHour                  = 24
	MinSlotStepMinutes          = 5
	MaxSlotStepMinutes          = 480 // 8 hours
	MinConcurrentBookings       = 1
	MaxConcurrentBookingsLimit  = 20
	MinAdvanceBookingDays       = 0
	MaxAdvanceBookingDays       = 365 // 1 year
	MinNoticeMinutes            = 0
	MaxNoticeMinutes            = 10080 // 1 week
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCustomerNameLength       = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется при фильтрации для раскладки дня и подсчета занятости
var InactiveStatuses = []BookingStatus{
	StatusCancelledByCustomer,
	StatusCancelledByClinic,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
