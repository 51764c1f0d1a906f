package get_staff_day_schedule

import (
	"github.com/glowcare/clinic-booking/internal/domain"
	getDaySchedule "github.com/glowcare/clinic-booking/internal/usecase/get_day_schedule"
)

// DayScheduleResponse HTTP response model с раскладкой дня мастера
type DayScheduleResponse struct {
	Date    string `json:"date"` // "2026-09-15"
	StaffID int64  `json:"staffId"`

	// Параметры сетки, по которым строилась раскладка
	StartHour       int `json:"startHour"`
	EndHour         int `json:"endHour"`
	MinutesPerPixel int `json:"minutesPerPixel"`

	Entries      []EntryResponse       `json:"entries"`
	NowIndicator *NowIndicatorResponse `json:"nowIndicator,omitempty"`
}

// EntryResponse раскладка одного бронирования
type EntryResponse struct {
	BookingID     int64  `json:"bookingId"`
	CustomerID    int64  `json:"customerId"`
	TreatmentName string `json:"treatmentName"`
	Status        string `json:"status"`
	StartTime     string `json:"startTime"` // "10:00"
	EndTime       string `json:"endTime"`   // "11:30"

	Column        int `json:"column"`
	ColumnCount   int `json:"columnCount"`
	TopMinutes    int `json:"topMinutes"`
	HeightMinutes int `json:"heightMinutes"`
}

// NowIndicatorResponse позиция индикатора текущего времени
type NowIndicatorResponse struct {
	TopMinutes int  `json:"topMinutes"`
	Visible    bool `json:"visible"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	out := &DayScheduleResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		StaffID:         resp.StaffID,
		StartHour:       resp.StartHour,
		EndHour:         resp.EndHour,
		MinutesPerPixel: resp.MinutesPerPixel,
		Entries:         make([]EntryResponse, len(resp.Entries)),
	}

	for i, entry := range resp.Entries {
		out.Entries[i] = EntryResponse{
			BookingID:     entry.BookingID,
			CustomerID:    entry.CustomerID,
			TreatmentName: entry.TreatmentName,
			Status:        string(entry.Status),
			StartTime:     entry.StartTime.String(),
			EndTime:       entry.EndTime.String(),
			Column:        entry.Column,
			ColumnCount:   entry.ColumnCount,
			TopMinutes:    entry.TopMinutes,
			HeightMinutes: entry.HeightMinutes,
		}
	}

	// Индикатор отдаём только когда он имеет смысл для запрошенного дня
	if resp.NowIndicator.Visible {
		out.NowIndicator = &NowIndicatorResponse{
			TopMinutes: resp.NowIndicator.TopMinutes,
			Visible:    true,
		}
	}

	return out
}
