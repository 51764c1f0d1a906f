package domain

import "time"

// ColumnScope determines how the layout column count is reported
type ColumnScope string

const (
	// ColumnScopeDay applies the day's maximum column count to every booking
	ColumnScopeDay ColumnScope = "day"

	// ColumnScopeCluster applies a separate column count to each connected
	// cluster of overlapping bookings, producing tighter layouts
	ColumnScopeCluster ColumnScope = "cluster"
)

// IsValid returns true for a known column scope value
func (s ColumnScope) IsValid() bool {
	return s == ColumnScopeDay || s == ColumnScopeCluster
}

// ScheduleWindow describes the visible day grid and booking rules for a staff member
// StaffID == nil означает конфигурацию по умолчанию для всей клиники
type ScheduleWindow struct {
	ID                      int64
	StaffID                 *int64
	StartHour               int // Верхняя граница сетки (например, 9)
	EndHour                 int // Нижняя граница сетки (например, 19)
	MinutesPerPixel         int
	ColumnScope             ColumnScope
	SlotStepMinutes         int
	MaxConcurrentBookings   int
	AdvanceBookingDays      int // 0 = без ограничения
	MinBookingNoticeMinutes int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsClinicDefault returns true if this window applies to the whole clinic
func (w *ScheduleWindow) IsClinicDefault() bool {
	return w.StaffID == nil
}

// StartMinutes returns the top of the grid as minutes since midnight
func (w *ScheduleWindow) StartMinutes() int {
	return w.StartHour * 60
}

// EndMinutes returns the bottom of the grid as minutes since midnight
func (w *ScheduleWindow) EndMinutes() int {
	return w.EndHour * 60
}

// LengthMinutes returns the vertical extent of the grid in minutes
func (w *ScheduleWindow) LengthMinutes() int {
	return w.EndMinutes() - w.StartMinutes()
}

// ContainsMinutes reports whether a minutes-since-midnight value falls
// inside the half-open window [StartMinutes, EndMinutes)
func (w *ScheduleWindow) ContainsMinutes(minutes int) bool {
	return minutes >= w.StartMinutes() && minutes < w.EndMinutes()
}

// HasAdvanceBookingLimit returns true if there is a limit on how far in advance bookings can be made
func (w *ScheduleWindow) HasAdvanceBookingLimit() bool {
	return w.AdvanceBookingDays > 0
}

// BookingLayout is the rendering-ready placement of one booking in the day grid
// Горизонтальная раскладка (колонки) исключает визуальные пересечения,
// вертикальная (top/height) - в минутах от начала окна
type BookingLayout struct {
	BookingID     int64
	Column        int // Нулевая колонка - самая левая
	ColumnCount   int
	TopMinutes    int // Может быть отрицательным, если бронирование раньше начала окна
	HeightMinutes int // Не бывает отрицательным, вырожденные интервалы дают 0
}

// TimeIndicator is the "now" line position within the day grid
type TimeIndicator struct {
	TopMinutes int
	Visible    bool
}
