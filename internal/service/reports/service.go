package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/glowcare/clinic-booking/internal/domain"
	"github.com/glowcare/clinic-booking/internal/service/reports/models"
)

// Service сервис финансовой отчётности клиники
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Revenue считает выручку клиники за период
// Учитываются только выполненные бронирования
func (s *Service) Revenue(ctx context.Context, req *models.RevenueReportRequest) (*models.RevenueReportResponse, error) {
	s.logger.Info("Revenue: building report for period=%s to %s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if err := validatePeriod(req.From, req.To); err != nil {
		s.logger.Warn("Revenue: invalid period: %v", err)
		return nil, err
	}

	revenue, count, err := s.bookingRepo.RevenueByPeriod(ctx, req.From, req.To)
	if err != nil {
		s.logger.Error("Revenue: repository error: %v", err)
		return nil, fmt.Errorf("%w: Revenue - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Revenue: report built, revenue=%.2f bookings=%d", revenue, count)
	return &models.RevenueReportResponse{
		From:              req.From.Format(domain.DateFormat),
		To:                req.To.Format(domain.DateFormat),
		TotalRevenue:      revenue,
		CompletedBookings: count,
	}, nil
}

// Salary считает зарплату мастера за период:
// фиксированная база плюс комиссия от выручки выполненных процедур
func (s *Service) Salary(ctx context.Context, req *models.SalaryReportRequest) (*models.SalaryReportResponse, error) {
	s.logger.Info("Salary: building report for staff=%d period=%s to %s",
		req.StaffID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if req.StaffID <= 0 {
		s.logger.Warn("Salary: invalid staff id=%d", req.StaffID)
		return nil, fmt.Errorf("%w: staff id must be positive", ErrInvalidInput)
	}
	if err := validatePeriod(req.From, req.To); err != nil {
		s.logger.Warn("Salary: invalid period for staff=%d: %v", req.StaffID, err)
		return nil, err
	}
	if req.BaseSalary < 0 {
		s.logger.Warn("Salary: negative base salary for staff=%d", req.StaffID)
		return nil, fmt.Errorf("%w: base salary must not be negative", ErrInvalidInput)
	}

	revenue, commission, count, err := s.bookingRepo.StaffEarningsByPeriod(ctx, req.StaffID, req.From, req.To)
	if err != nil {
		s.logger.Error("Salary: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: Salary - repository error: %v", ErrInternal, err)
	}

	total := req.BaseSalary + commission

	s.logger.Info("Salary: report built for staff=%d, commission=%.2f total=%.2f", req.StaffID, commission, total)
	return &models.SalaryReportResponse{
		StaffID:           req.StaffID,
		From:              req.From.Format(domain.DateFormat),
		To:                req.To.Format(domain.DateFormat),
		CompletedBookings: count,
		TreatmentRevenue:  revenue,
		BaseSalary:        req.BaseSalary,
		Commission:        commission,
		TotalSalary:       total,
	}, nil
}

func validatePeriod(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: period bounds are required", ErrInvalidPeriod)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: period end before start", ErrInvalidPeriod)
	}
	return nil
}
