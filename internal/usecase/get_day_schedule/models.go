package get_day_schedule

import (
	"time"

	"github.com/glowcare/clinic-booking/internal/domain"
	"github.com/glowcare/clinic-booking/pkg/types"
)

// Request модель запроса раскладки дня
type Request struct {
	UserID  int64     // ID пользователя (для логирования, не влияет на результат)
	StaffID int64     // ID мастера
	Date    time.Time // Дата, на которую строится раскладка (без времени)
}

// Response модель ответа с раскладкой дня
type Response struct {
	Date    time.Time
	StaffID int64

	// Параметры сетки, по которым строилась раскладка
	StartHour       int
	EndHour         int
	MinutesPerPixel int

	Entries      []Entry
	NowIndicator domain.TimeIndicator
}

// Entry раскладка одного бронирования вместе с данными для отображения
type Entry struct {
	BookingID     int64
	CustomerID    int64
	TreatmentName string
	Status        domain.BookingStatus
	StartTime     types.TimeString
	EndTime       types.TimeString

	Column        int
	ColumnCount   int
	TopMinutes    int
	HeightMinutes int
}
