package get_staff_bookings

import (
	"context"

	"github.com/glowcare/clinic-booking/internal/service/bookings/models"
)

type BookingService interface {
	GetStaffBookings(ctx context.Context, req *models.GetStaffBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
