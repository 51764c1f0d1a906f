package get_customer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glowcare/clinic-booking/internal/api/handlers"
	"github.com/glowcare/clinic-booking/internal/service/customers"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgNotFound          = "клиент не найден"
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

// Handle GET /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /customers/{id} - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	customer, err := h.service.GetByID(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("GET /customers/{id} - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /customers/{id} - Failed to get customer: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id} - Customer returned: customer_id=%d", customerID)
	handlers.RespondJSON(w, http.StatusOK, customer)
}
