package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowcare/clinic-booking/internal/service/reports/models"
)

type stubBookingRepo struct {
	revenue    float64
	commission float64
	count      int
	err        error
}

func (s *stubBookingRepo) RevenueByPeriod(_ context.Context, _, _ time.Time) (float64, int, error) {
	return s.revenue, s.count, s.err
}

func (s *stubBookingRepo) StaffEarningsByPeriod(_ context.Context, _ int64, _, _ time.Time) (float64, float64, int, error) {
	return s.revenue, s.commission, s.count, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRevenueReport(t *testing.T) {
	repo := &stubBookingRepo{revenue: 15400.50, count: 42}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Revenue(context.Background(), &models.RevenueReportRequest{
		From: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-01", resp.From)
	assert.Equal(t, "2026-09-30", resp.To)
	assert.InDelta(t, 15400.50, resp.TotalRevenue, 0.001)
	assert.Equal(t, 42, resp.CompletedBookings)
}

func TestRevenueReport_InvalidPeriod(t *testing.T) {
	svc := NewService(&stubBookingRepo{}, nopLogger{})

	_, err := svc.Revenue(context.Background(), &models.RevenueReportRequest{
		From: time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestSalaryReport_BasePlusCommission(t *testing.T) {
	repo := &stubBookingRepo{revenue: 10000, commission: 1500, count: 12}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Salary(context.Background(), &models.SalaryReportRequest{
		StaffID:    3,
		From:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		BaseSalary: 40000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.StaffID)
	assert.Equal(t, 12, resp.CompletedBookings)
	assert.InDelta(t, 10000, resp.TreatmentRevenue, 0.001)
	assert.InDelta(t, 1500, resp.Commission, 0.001)
	assert.InDelta(t, 41500, resp.TotalSalary, 0.001)
}

func TestSalaryReport_InvalidInput(t *testing.T) {
	svc := NewService(&stubBookingRepo{}, nopLogger{})
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	_, err := svc.Salary(context.Background(), &models.SalaryReportRequest{StaffID: 0, From: from, To: to})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Salary(context.Background(), &models.SalaryReportRequest{StaffID: 1, From: from, To: to, BaseSalary: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
