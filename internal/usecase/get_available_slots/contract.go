package get_available_slots

import (
	"context"
	"time"

	"github.com/glowcare/clinic-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByStaffWithFilter получает все бронирования мастера на конкретную дату
	GetByStaffWithFilter(ctx context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleConfigRepository интерфейс репозитория конфигурации окна расписания
type ScheduleConfigRepository interface {
	// GetWindowForStaff получает окно расписания с учетом иерархии приоритетов
	GetWindowForStaff(ctx context.Context, staffID int64) (*domain.ScheduleWindow, error)
}

// TreatmentRepository интерфейс репозитория процедур
type TreatmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Treatment, error)
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
