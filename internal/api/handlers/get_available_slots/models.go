package get_available_slots

import (
	"github.com/glowcare/clinic-booking/internal/domain"
	getAvailableSlots "github.com/glowcare/clinic-booking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model со списком доступных слотов
type AvailableSlotsResponse struct {
	Date        string         `json:"date"` // "2026-09-15"
	StaffID     int64          `json:"staffId"`
	TreatmentID int64          `json:"treatmentId"`
	Slots       []SlotResponse `json:"slots"`
}

// SlotResponse один временной слот
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	AvailableSpots  int    `json:"availableSpots"`
	TotalSpots      int    `json:"totalSpots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		StaffID:     resp.StaffID,
		TreatmentID: resp.TreatmentID,
		Slots:       make([]SlotResponse, len(resp.Slots)),
	}

	for i, slot := range resp.Slots {
		out.Slots[i] = SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			AvailableSpots:  slot.AvailableSpots,
			TotalSpots:      slot.TotalSpots,
		}
	}

	return out
}
