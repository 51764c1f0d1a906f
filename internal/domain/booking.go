package domain

import (
	"time"

	"github.com/glowcare/clinic-booking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusInProgress          BookingStatus = "in_progress"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledByClinic   BookingStatus = "cancelled_by_clinic"
	StatusNoShow              BookingStatus = "no_show"
)

// Booking represents a scheduled treatment appointment in the clinic
type Booking struct {
	ID              int64
	CustomerID      int64
	StaffID         int64 // ID мастера, который проводит процедуру
	TreatmentID     int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	TreatmentName  string
	TreatmentPrice float64
	Notes          *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByCustomer &&
		b.Status != StatusCancelledByClinic &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByCustomer || b.Status == StatusCancelledByClinic
}

// IsCompleted returns true if the booking is completed or was a no-show
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted || b.Status == StatusNoShow
}

// StartMinutes returns the booking start as minutes since midnight
func (b *Booking) StartMinutes() int {
	return b.StartTime.Minutes()
}

// EndMinutes returns the booking end as minutes since midnight
// Если EndTime не задан, конец выводится из денормализованной длительности
func (b *Booking) EndMinutes() int {
	if !b.EndTime.IsZero() {
		return b.EndTime.Minutes()
	}
	return b.StartTime.Minutes() + b.DurationMinutes
}

// Overlaps reports whether two bookings overlap in time on the same date
// Граничащие интервалы (конец одного == начало другого) пересечением не считаются
func (b *Booking) Overlaps(other *Booking) bool {
	if !SameDay(b.BookingDate, other.BookingDate) {
		return false
	}
	return b.StartMinutes() < other.EndMinutes() && other.StartMinutes() < b.EndMinutes()
}

// StaffBookingsFilter фильтр для получения бронирований мастера
type StaffBookingsFilter struct {
	StaffID         int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные и no-show бронирования
}

// CustomerBookingsFilter фильтр для истории бронирований клиента
type CustomerBookingsFilter struct {
	CustomerID int64
	Status     *BookingStatus
}

// SameDay reports whether two timestamps fall on the same calendar date
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
