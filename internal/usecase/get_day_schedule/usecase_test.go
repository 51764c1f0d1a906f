package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowcare/clinic-booking/internal/domain"
	scheduleRepo "github.com/glowcare/clinic-booking/internal/infra/storage/scheduleconfig"
	"github.com/glowcare/clinic-booking/pkg/types"
)

type stubBookingRepo struct {
	bookings    []*domain.Booking
	gotInactive bool
}

func (s *stubBookingRepo) GetByStaffWithFilter(_ context.Context, filter domain.StaffBookingsFilter) ([]*domain.Booking, error) {
	s.gotInactive = filter.IncludeInactive
	return s.bookings, nil
}

type stubScheduleRepo struct {
	window *domain.ScheduleWindow
	err    error
}

func (s *stubScheduleRepo) GetWindowForStaff(_ context.Context, _ int64) (*domain.ScheduleWindow, error) {
	return s.window, s.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func testBooking(t *testing.T, id int64, day time.Time, start, end string) *domain.Booking {
	t.Helper()
	startTS := mustTime(t, start)
	endTS := mustTime(t, end)
	return &domain.Booking{
		ID:              id,
		CustomerID:      100 + id,
		StaffID:         1,
		BookingDate:     day,
		StartTime:       startTS,
		EndTime:         endTS,
		DurationMinutes: endTS.Minutes() - startTS.Minutes(),
		Status:          domain.StatusConfirmed,
		TreatmentName:   "Чистка лица",
	}
}

func TestExecute_BuildsLayoutWithWindow(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	bookings := &stubBookingRepo{bookings: []*domain.Booking{
		testBooking(t, 1, day, "09:00", "10:00"),
		testBooking(t, 2, day, "09:30", "10:30"),
	}}
	schedule := &stubScheduleRepo{window: &domain.ScheduleWindow{
		ID:              7,
		StartHour:       9,
		EndHour:         19,
		MinutesPerPixel: 1,
		ColumnScope:     domain.ColumnScopeDay,
	}}

	uc := NewUseCase(bookings, schedule, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, StaffID: 1, Date: day})
	require.NoError(t, err)

	require.Len(t, resp.Entries, 2)
	assert.Equal(t, 9, resp.StartHour)
	assert.Equal(t, 19, resp.EndHour)

	// Пересекающиеся записи разнесены по колонкам
	assert.Equal(t, 0, resp.Entries[0].Column)
	assert.Equal(t, 1, resp.Entries[1].Column)
	assert.Equal(t, 2, resp.Entries[0].ColumnCount)

	// Данные бронирования попали в entry
	assert.Equal(t, int64(101), resp.Entries[0].CustomerID)
	assert.Equal(t, "Чистка лица", resp.Entries[0].TreatmentName)

	// Отмененные записи не запрашивались
	assert.False(t, bookings.gotInactive)
}

func TestExecute_FallsBackToDefaultWindow(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	bookings := &stubBookingRepo{}
	schedule := &stubScheduleRepo{err: scheduleRepo.ErrWindowNotFound}

	uc := NewUseCase(bookings, schedule, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, StaffID: 1, Date: day})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultStartHour, resp.StartHour)
	assert.Equal(t, domain.DefaultEndHour, resp.EndHour)
	assert.Empty(t, resp.Entries)
}

func TestExecute_NowIndicatorOnlyForToday(t *testing.T) {
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	schedule := &stubScheduleRepo{err: scheduleRepo.ErrWindowNotFound}

	// Запрошенный день совпадает с "сейчас" - индикатор виден
	uc := NewUseCase(&stubBookingRepo{}, schedule, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 15, 12, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, StaffID: 1, Date: day})
	require.NoError(t, err)
	assert.True(t, resp.NowIndicator.Visible)
	assert.Equal(t, 12*60+30-domain.DefaultStartHour*60, resp.NowIndicator.TopMinutes)

	// Другой день - индикатора нет
	uc = NewUseCase(&stubBookingRepo{}, schedule, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, 9, 16, 12, 30, 0, 0, time.UTC)}

	resp, err = uc.Execute(context.Background(), &Request{UserID: 1, StaffID: 1, Date: day})
	require.NoError(t, err)
	assert.False(t, resp.NowIndicator.Visible)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, &stubScheduleRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, StaffID: 0, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_InvalidWindowRejected(t *testing.T) {
	schedule := &stubScheduleRepo{window: &domain.ScheduleWindow{
		StartHour:       19,
		EndHour:         9, // конец раньше начала
		MinutesPerPixel: 1,
		ColumnScope:     domain.ColumnScopeDay,
	}}

	uc := NewUseCase(&stubBookingRepo{}, schedule, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Now()}

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, StaffID: 1, Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
