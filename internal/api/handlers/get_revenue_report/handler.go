package get_revenue_report

import (
	"errors"
	"net/http"
	"time"

	"github.com/glowcare/clinic-booking/internal/api/handlers"
	"github.com/glowcare/clinic-booking/internal/domain"
	"github.com/glowcare/clinic-booking/internal/service/reports"
	"github.com/glowcare/clinic-booking/internal/service/reports/models"
)

const (
	msgInvalidPeriod = "некорректный период отчёта, ожидается from и to в формате YYYY-MM-DD"
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

// Handle GET /api/v1/reports/revenue?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /reports/revenue - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /reports/revenue - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.Revenue(r.Context(), &models.RevenueReportRequest{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/revenue - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /reports/revenue - Failed to build report: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/revenue - Report returned: period=%s to %s", result.From, result.To)
	handlers.RespondJSON(w, http.StatusOK, result)
}
