package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowcare/clinic-booking/internal/domain"
	"github.com/glowcare/clinic-booking/pkg/ptr"
	"github.com/glowcare/clinic-booking/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		UserID:      1,
		CustomerID:  2,
		StaffID:     3,
		TreatmentID: 4,
		Date:        time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime:   mustTime(t, "10:00"),
	}
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest(t)))

	req := validRequest(t)
	req.CustomerID = 0
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest(t)
	req.StaffID = -1
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest(t)
	req.TreatmentID = 0
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest(t)
	req.Date = time.Time{}
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest(t)
	req.StartTime = types.TimeString("")
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest(t)
	req.Notes = ptr.Ptr(strings.Repeat("а", domain.MaxNotesLength+1))
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	// Сегодня и завтра - ок
	assert.NoError(t, validateDate(now, now, 0))
	assert.NoError(t, validateDate(now.AddDate(0, 0, 1), now, 0))

	// Вчера - ошибка
	assert.ErrorIs(t, validateDate(now.AddDate(0, 0, -1), now, 0), ErrInvalidDate)

	// Ограничение advanceBookingDays
	assert.NoError(t, validateDate(now.AddDate(0, 0, 14), now, 14))
	assert.ErrorIs(t, validateDate(now.AddDate(0, 0, 15), now, 14), ErrDateTooFarInFuture)

	// 0 = без ограничения
	assert.NoError(t, validateDate(now.AddDate(1, 0, 0), now, 0))
}

func TestValidateBookingTime(t *testing.T) {
	now := time.Date(2026, 9, 15, 9, 30, 0, 0, time.UTC)
	today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	// Будущая дата - notice не проверяется
	assert.NoError(t, validateBookingTime(tomorrow, mustTime(t, "09:00"), now, 60))

	// Сегодня: 10:30 ровно на границе notice - допустимо
	assert.NoError(t, validateBookingTime(today, mustTime(t, "10:30"), now, 60))

	// Сегодня: 10:00 раньше границы - слишком поздно
	assert.ErrorIs(t, validateBookingTime(today, mustTime(t, "10:00"), now, 60), ErrTooLateToBook)
}

func TestValidateWithinBusinessHours(t *testing.T) {
	window := &domain.ScheduleWindow{StartHour: 9, EndHour: 19}

	// Укладывается целиком
	assert.NoError(t, validateWithinBusinessHours(window, mustTime(t, "09:00"), 60))
	assert.NoError(t, validateWithinBusinessHours(window, mustTime(t, "18:00"), 60))

	// Начало до открытия
	assert.ErrorIs(t, validateWithinBusinessHours(window, mustTime(t, "08:30"), 60), ErrOutsideBusinessHours)

	// Конец после закрытия
	assert.ErrorIs(t, validateWithinBusinessHours(window, mustTime(t, "18:30"), 60), ErrOutsideBusinessHours)
}

func TestCountOverlappingBookings(t *testing.T) {
	mk := func(start, end string, status domain.BookingStatus) *domain.Booking {
		startTS := mustTime(t, start)
		endTS := mustTime(t, end)
		return &domain.Booking{
			StartTime:       startTS,
			EndTime:         endTS,
			DurationMinutes: endTS.Minutes() - startTS.Minutes(),
			Status:          status,
		}
	}

	bookings := []*domain.Booking{
		mk("10:00", "11:00", domain.StatusConfirmed),
		mk("10:30", "11:30", domain.StatusPending),
		mk("10:00", "11:00", domain.StatusCancelledByClinic), // не считается
	}

	// Новая запись 10:30-11:30 пересекается с двумя активными
	assert.Equal(t, 2, countOverlappingBookings(mustTime(t, "10:30"), 60, bookings))

	// Граничащая запись 11:30-12:30 ни с кем не пересекается
	assert.Equal(t, 0, countOverlappingBookings(mustTime(t, "11:30"), 60, bookings))
}
