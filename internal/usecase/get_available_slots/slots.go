package get_available_slots

import (
	"time"

	"github.com/glowcare/clinic-booking/internal/domain"
	"github.com/glowcare/clinic-booking/pkg/types"
)

// generateTimeSlots генерирует список возможных слотов на день
// Слоты идут от начала окна расписания с шагом stepMinutes; слот попадает в список,
// только если процедура длительностью treatmentDuration успевает закончиться до закрытия
// Для сегодняшней даты слоты дополнительно фильтруются по минимальному времени до записи
func generateTimeSlots(
	window *domain.ScheduleWindow,
	stepMinutes int,
	treatmentDuration int,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	// Дата в прошлом - слотов нет
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	openMinutes := window.StartMinutes()
	closeMinutes := window.EndMinutes()

	// Шаг 1: Генерируем все слоты от открытия до закрытия с фиксированным шагом
	allSlots := make([]types.TimeString, 0)
	for current := openMinutes; current < closeMinutes; current += stepMinutes {
		// Процедура должна уложиться до закрытия
		if current+treatmentDuration > closeMinutes {
			break
		}
		slot, err := types.NewTimeStringFromMinutes(current)
		if err != nil {
			return nil, err
		}
		allSlots = append(allSlots, slot)
	}

	// Шаг 2: Если дата не сегодня - возвращаем все слоты
	if !domain.SameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: Для сегодняшней даты отсекаем слоты раньше минимального времени записи
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(window.MinBookingNoticeMinutes)
	if err != nil {
		return nil, err
	}

	availableSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if !slot.IsBefore(minAllowedTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// calculateAvailableSpots вычисляет количество свободных мест для каждого слота
func calculateAvailableSpots(
	slots []types.TimeString,
	treatmentDuration int,
	bookings []*domain.Booking,
	maxConcurrentBookings int,
) []Slot {
	result := make([]Slot, len(slots))

	for i, slotStart := range slots {
		overlappingCount := countOverlappingBookings(slotStart, treatmentDuration, bookings)

		availableSpots := maxConcurrentBookings - overlappingCount
		if availableSpots < 0 {
			availableSpots = 0
		}

		result[i] = Slot{
			StartTime:       slotStart,
			DurationMinutes: treatmentDuration,
			AvailableSpots:  availableSpots,
			TotalSpots:      maxConcurrentBookings,
		}
	}

	return result
}

// countOverlappingBookings подсчитывает количество активных бронирований,
// пересекающихся с указанным слотом
// Граничащие интервалы (конец одного == начало другого) пересечением не считаются
func countOverlappingBookings(slotStart types.TimeString, duration int, bookings []*domain.Booking) int {
	start := slotStart.Minutes()
	end := start + duration

	count := 0
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		// Строгие неравенства: интервалы пересекаются, только если реально накладываются
		if booking.StartMinutes() < end && booking.EndMinutes() > start {
			count++
		}
	}

	return count
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
