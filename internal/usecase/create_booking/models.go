package create_booking

import (
	"time"

	"github.com/glowcare/clinic-booking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      int64            // ID пользователя, создающего запись (клиент или администратор)
	CustomerID  int64            // ID клиента, для которого создается запись
	StaffID     int64            // ID мастера
	TreatmentID int64            // ID процедуры
	Date        time.Time        // Дата записи (без времени)
	StartTime   types.TimeString // Время начала ("10:00")
	Notes       *string          // Заметки к записи (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	CustomerID      int64
	StaffID         int64
	TreatmentID     int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          string
	TreatmentName   string
	TreatmentPrice  float64
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
