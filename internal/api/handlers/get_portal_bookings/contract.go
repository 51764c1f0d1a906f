package get_portal_bookings

import (
	"context"

	bookingModels "github.com/glowcare/clinic-booking/internal/service/bookings/models"
	customerModels "github.com/glowcare/clinic-booking/internal/service/customers/models"
)

type CustomerService interface {
	GetByPortalToken(ctx context.Context, token string) (*customerModels.CustomerResponse, error)
}

type BookingService interface {
	GetCustomerBookings(ctx context.Context, req *bookingModels.GetCustomerBookingsRequest) (*bookingModels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
