package create_booking

import (
	"context"
	"time"

	"github.com/glowcare/clinic-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByStaffWithFilter в транзакции блокирует строки дня (FOR UPDATE)
	GetByStaffWithFilter(ctx context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleConfigRepository интерфейс репозитория конфигурации окна расписания
type ScheduleConfigRepository interface {
	GetWindowForStaff(ctx context.Context, staffID int64) (*domain.ScheduleWindow, error)
}

// TreatmentRepository интерфейс репозитория процедур
type TreatmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Treatment, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
