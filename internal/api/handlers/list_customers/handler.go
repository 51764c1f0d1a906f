package list_customers

import (
	"net/http"
	"strconv"

	"github.com/glowcare/clinic-booking/internal/api/handlers"
	"github.com/glowcare/clinic-booking/internal/service/customers/models"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers?search=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListCustomersRequest{}
	if search := query.Get("search"); search != "" {
		req.Search = &search
	}
	// Некорректные значения лимитов игнорируем - сервис подставит умолчания
	req.Limit, _ = strconv.Atoi(query.Get("limit"))
	req.Offset, _ = strconv.Atoi(query.Get("offset"))

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /customers - Failed to list customers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers - Customers returned: count=%d", len(result.Customers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
