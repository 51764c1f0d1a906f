package get_salary_report

import (
	"context"

	"github.com/glowcare/clinic-booking/internal/service/reports/models"
)

type ReportService interface {
	Salary(ctx context.Context, req *models.SalaryReportRequest) (*models.SalaryReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
