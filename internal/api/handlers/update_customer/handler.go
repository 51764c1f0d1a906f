package update_customer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glowcare/clinic-booking/internal/api/handlers"
	"github.com/glowcare/clinic-booking/internal/service/customers"
	"github.com/glowcare/clinic-booking/internal/service/customers/models"
)

const (
	msgInvalidCustomerID  = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "клиент не найден"
	msgDuplicateEmail     = "клиент с таким email уже существует"
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

// Handle PUT /api/v1/customers/{customerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /customers/{id} - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	var req models.UpdateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /customers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customer, err := h.service.Update(r.Context(), customerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("PUT /customers/{id} - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, customers.ErrDuplicateEmail):
			h.logger.Warn("PUT /customers/{id} - Duplicate email: customer_id=%d", customerID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateEmail)

		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("PUT /customers/{id} - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /customers/{id} - Failed to update customer: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /customers/{id} - Customer updated successfully: customer_id=%d", customerID)
	handlers.RespondJSON(w, http.StatusOK, customer)
}
