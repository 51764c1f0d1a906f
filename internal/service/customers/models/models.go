package models

import (
	"time"

	"github.com/glowcare/clinic-booking/internal/domain"
)

// Request модели

// CreateCustomerRequest запрос на создание клиента
type CreateCustomerRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// UpdateCustomerRequest запрос на обновление данных клиента
// Nil-поля не изменяются
type UpdateCustomerRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ListCustomersRequest запрос на получение списка клиентов
type ListCustomersRequest struct {
	Search *string `json:"search,omitempty"` // Поиск по имени или email
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// Response модели

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	PortalToken string    `json:"portalToken"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// Методы конвертации

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}

	return &CustomerResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		PortalToken: c.PortalToken.String(),
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// FromDomainCustomerList конвертирует список domain моделей в DTO
func FromDomainCustomerList(customers []*domain.Customer) *CustomerListResponse {
	if customers == nil {
		return &CustomerListResponse{
			Customers: []CustomerResponse{},
		}
	}

	resp := &CustomerListResponse{
		Customers: make([]CustomerResponse, len(customers)),
	}

	for i, customer := range customers {
		if customerResp := FromDomainCustomer(customer); customerResp != nil {
			resp.Customers[i] = *customerResp
		}
	}

	return resp
}
