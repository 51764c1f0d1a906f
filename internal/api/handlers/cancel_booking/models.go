package cancel_booking

import "github.com/glowcare/clinic-booking/internal/service/bookings/models"

// CancelBookingRequest HTTP request model
// Отмена через этот endpoint выполняется администратором клиники
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		ByCustomer:         false,
		CancellationReason: r.CancellationReason,
	}
}
