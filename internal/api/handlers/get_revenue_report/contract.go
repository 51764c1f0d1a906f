package get_revenue_report

import (
	"context"

	"github.com/glowcare/clinic-booking/internal/service/reports/models"
)

type ReportService interface {
	Revenue(ctx context.Context, req *models.RevenueReportRequest) (*models.RevenueReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
