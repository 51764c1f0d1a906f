package get_salary_report

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/glowcare/clinic-booking/internal/api/handlers"
	"github.com/glowcare/clinic-booking/internal/domain"
	"github.com/glowcare/clinic-booking/internal/service/reports"
	"github.com/glowcare/clinic-booking/internal/service/reports/models"
)

const (
	msgInvalidStaffID    = "некорректный ID мастера"
	msgInvalidPeriod     = "некорректный период отчёта, ожидается from и to в формате YYYY-MM-DD"
	msgInvalidBaseSalary = "некорректное значение базовой зарплаты"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/salary?staffId=3&from=YYYY-MM-DD&to=YYYY-MM-DD&baseSalary=40000
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	staffID, err := strconv.ParseInt(query.Get("staffId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /reports/salary - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /reports/salary - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /reports/salary - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	// Базовая зарплата за период (опционально, по умолчанию 0)
	var baseSalary float64
	if baseStr := query.Get("baseSalary"); baseStr != "" {
		baseSalary, err = strconv.ParseFloat(baseStr, 64)
		if err != nil {
			h.logger.Warn("GET /reports/salary - Invalid base salary: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBaseSalary)
			return
		}
	}

	result, err := h.service.Salary(r.Context(), &models.SalaryReportRequest{
		StaffID:    staffID,
		From:       from,
		To:         to,
		BaseSalary: baseSalary,
	})
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/salary - Invalid period: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /reports/salary - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /reports/salary - Failed to build report: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/salary - Report returned: staff_id=%d, period=%s to %s",
		staffID, result.From, result.To)
	handlers.RespondJSON(w, http.StatusOK, result)
}
