package get_available_slots

import (
	"time"

	"github.com/glowcare/clinic-booking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID      int64     // ID пользователя (для логирования, не влияет на результат)
	StaffID     int64     // ID мастера
	TreatmentID int64     // ID процедуры
	Date        time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date        time.Time
	StaffID     int64
	TreatmentID int64
	Slots       []Slot
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность процедуры в минутах
	AvailableSpots  int              // Количество свободных мест
	TotalSpots      int              // Общее количество мест
}
