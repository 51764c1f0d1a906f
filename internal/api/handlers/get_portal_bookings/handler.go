package get_portal_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glowcare/clinic-booking/internal/api/handlers"
	bookingModels "github.com/glowcare/clinic-booking/internal/service/bookings/models"
	"github.com/glowcare/clinic-booking/internal/service/customers"
)

const (
	// Портал отвечает 404 и на неизвестный, и на некорректный токен,
	// чтобы не раскрывать формат валидных токенов
	msgNotFound = "страница не найдена"
)

type Handler struct {
	customerService CustomerService
	bookingService  BookingService
	logger          Logger
}

func NewHandler(customerService CustomerService, bookingService BookingService, logger Logger) *Handler {
	return &Handler{
		customerService: customerService,
		bookingService:  bookingService,
		logger:          logger,
	}
}

// Handle GET /api/v1/portal/{token}/bookings
// Публичный endpoint клиентского портала: клиент видит свои бронирования
// по непубличному токену без аккаунта
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	token := vars["token"]

	customer, err := h.customerService.GetByPortalToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound), errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("GET /portal/{token}/bookings - Unknown or malformed token")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /portal/{token}/bookings - Failed to resolve token: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result, err := h.bookingService.GetCustomerBookings(r.Context(), &bookingModels.GetCustomerBookingsRequest{
		CustomerID: customer.ID,
	})
	if err != nil {
		h.logger.Error("GET /portal/{token}/bookings - Failed to get bookings: customer_id=%d, error=%v",
			customer.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /portal/{token}/bookings - Bookings returned: customer_id=%d, count=%d",
		customer.ID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
