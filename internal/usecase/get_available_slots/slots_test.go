package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowcare/clinic-booking/internal/domain"
	"github.com/glowcare/clinic-booking/pkg/types"
)

func testWindow() *domain.ScheduleWindow {
	return &domain.ScheduleWindow{
		StartHour:               9,
		EndHour:                 12,
		MinutesPerPixel:         1,
		ColumnScope:             domain.ColumnScopeDay,
		SlotStepMinutes:         30,
		MaxConcurrentBookings:   2,
		MinBookingNoticeMinutes: 60,
	}
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func activeBooking(t *testing.T, start, end string) *domain.Booking {
	t.Helper()
	startTS := mustTime(t, start)
	endTS := mustTime(t, end)
	return &domain.Booking{
		StartTime:       startTS,
		EndTime:         endTS,
		DurationMinutes: endTS.Minutes() - startTS.Minutes(),
		Status:          domain.StatusConfirmed,
	}
}

func slotStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func TestGenerateTimeSlots_TreatmentMustFitBeforeClose(t *testing.T) {
	tomorrow := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)

	// Процедура 60 минут в окне 9:00-12:00: последний старт 11:00
	slots, err := generateTimeSlots(testWindow(), 30, 60, tomorrow, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00"}, slotStrings(slots))
}

func TestGenerateTimeSlots_LongTreatmentHasFewerSlots(t *testing.T) {
	tomorrow := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)

	// Процедура 120 минут: стартовать можно только в 9:00, 9:30, 10:00
	slots, err := generateTimeSlots(testWindow(), 30, 120, tomorrow, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, slotStrings(slots))
}

func TestGenerateTimeSlots_PastDateEmpty(t *testing.T) {
	yesterday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)

	slots, err := generateTimeSlots(testWindow(), 30, 30, yesterday, now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateTimeSlots_TodayFilteredByNotice(t *testing.T) {
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	// Сейчас 9:15, минимальное время до записи 60 минут: первый доступный слот 10:30
	now := time.Date(2026, 9, 15, 9, 15, 0, 0, time.UTC)

	slots, err := generateTimeSlots(testWindow(), 30, 30, today, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"10:30", "11:00", "11:30"}, slotStrings(slots))
}

func TestCalculateAvailableSpots(t *testing.T) {
	slots := []types.TimeString{
		mustTime(t, "09:00"),
		mustTime(t, "10:00"),
		mustTime(t, "11:00"),
	}

	bookings := []*domain.Booking{
		activeBooking(t, "09:00", "10:00"),
		activeBooking(t, "09:30", "10:30"),
	}

	result := calculateAvailableSpots(slots, 60, bookings, 2)
	require.Len(t, result, 3)

	// 9:00-10:00 пересекается с обоими бронированиями
	assert.Equal(t, 0, result[0].AvailableSpots)
	assert.Equal(t, 2, result[0].TotalSpots)

	// 10:00-11:00 пересекается только со вторым (до 10:30)
	assert.Equal(t, 1, result[1].AvailableSpots)

	// 11:00-12:00 свободен
	assert.Equal(t, 2, result[2].AvailableSpots)
}

func TestCountOverlappingBookings_BoundariesDoNotOverlap(t *testing.T) {
	bookings := []*domain.Booking{
		activeBooking(t, "10:00", "11:00"),
	}

	// Слот, заканчивающийся ровно в начале бронирования, не пересекается
	assert.Equal(t, 0, countOverlappingBookings(mustTime(t, "09:00"), 60, bookings))

	// Слот, начинающийся ровно в конце бронирования, не пересекается
	assert.Equal(t, 0, countOverlappingBookings(mustTime(t, "11:00"), 60, bookings))

	// Частичное наложение считается
	assert.Equal(t, 1, countOverlappingBookings(mustTime(t, "10:30"), 60, bookings))
}

func TestCountOverlappingBookings_IgnoresInactive(t *testing.T) {
	cancelled := activeBooking(t, "10:00", "11:00")
	cancelled.Status = domain.StatusCancelledByCustomer

	noShow := activeBooking(t, "10:00", "11:00")
	noShow.Status = domain.StatusNoShow

	bookings := []*domain.Booking{cancelled, noShow}

	assert.Equal(t, 0, countOverlappingBookings(mustTime(t, "10:00"), 60, bookings))
}
