package reports

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория бронирований для отчётов
type BookingRepository interface {
	RevenueByPeriod(ctx context.Context, from, to time.Time) (revenue float64, count int, err error)
	StaffEarningsByPeriod(ctx context.Context, staffID int64, from, to time.Time) (revenue, commission float64, count int, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
