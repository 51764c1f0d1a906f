package get_day_schedule

import (
	"context"
	"time"

	"github.com/glowcare/clinic-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByStaffWithFilter получает бронирования мастера с фильтрацией по периоду и статусу
	GetByStaffWithFilter(ctx context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleConfigRepository интерфейс репозитория конфигурации окна расписания
type ScheduleConfigRepository interface {
	// GetWindowForStaff получает окно расписания с учетом иерархии:
	// персональная конфигурация мастера, затем конфигурация клиники
	GetWindowForStaff(ctx context.Context, staffID int64) (*domain.ScheduleWindow, error)
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
