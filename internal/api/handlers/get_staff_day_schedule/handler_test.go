package get_staff_day_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowcare/clinic-booking/internal/api/middleware"
	"github.com/glowcare/clinic-booking/internal/domain"
	getDaySchedule "github.com/glowcare/clinic-booking/internal/usecase/get_day_schedule"
)

type stubUseCase struct {
	gotRequest *getDaySchedule.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getDaySchedule.Request) (*getDaySchedule.Response, error) {
	s.gotRequest = req
	return &getDaySchedule.Response{
		Date:            req.Date,
		StaffID:         req.StaffID,
		StartHour:       domain.DefaultStartHour,
		EndHour:         domain.DefaultEndHour,
		MinutesPerPixel: domain.DefaultMinutesPerPixel,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func scheduleRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = mux.SetURLVars(req, map[string]string{"staffId": "1"})
	req.Header.Set(middleware.HeaderUserID, "1")
	return req
}

func TestHandle_DefaultDateIsTodayAtMidnight(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, scheduleRequest(t, "/api/v1/staff/1/schedule"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotRequest)

	// Дата без компонента времени: она связывается с колонкой DATE,
	// и "сегодня 14:30" не совпало бы ни с одной строкой сегодняшнего дня
	got := uc.gotRequest.Date
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
	assert.Equal(t, 0, got.Second())
	assert.Equal(t, 0, got.Nanosecond())

	// И это именно сегодняшний календарный день
	now := time.Now()
	assert.Equal(t, now.Format(domain.DateFormat), got.Format(domain.DateFormat))
}

func TestHandle_ExplicitDateParsed(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, scheduleRequest(t, "/api/v1/staff/1/schedule?date=2026-09-15"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotRequest)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), uc.gotRequest.Date)
}

func TestHandle_InvalidDateRejected(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, scheduleRequest(t, "/api/v1/staff/1/schedule?date=15.09.2026"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotRequest)
}
