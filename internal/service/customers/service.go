package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/glowcare/clinic-booking/internal/domain"
	customerRepo "github.com/glowcare/clinic-booking/internal/infra/storage/customer"
	"github.com/glowcare/clinic-booking/internal/service/customers/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Service сервис для работы с клиентами клиники
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Create создает нового клиента и выпускает токен клиентского портала
func (s *Service) Create(ctx context.Context, req *models.CreateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Create: creating customer email=%s", req.Email)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request for email=%s: %v", req.Email, err)
		return nil, err
	}

	customer := &domain.Customer{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       req.Phone,
		PortalToken: uuid.New(),
		Notes:       req.Notes,
	}

	created, err := s.customerRepo.Create(ctx, customer)
	if err != nil {
		if errors.Is(err, customerRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: duplicate email=%s", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created customer id=%d", created.ID)
	return models.FromDomainCustomer(created), nil
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	s.logger.Info("GetByID: fetching customer id=%d", id)

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByID: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByID: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomer(customer), nil
}

// GetByPortalToken находит клиента по токену клиентского портала
// Используется публичным порталом для доступа клиента к своим бронированиям
func (s *Service) GetByPortalToken(ctx context.Context, token string) (*models.CustomerResponse, error) {
	// Токен не логируем целиком - он даёт доступ к данным клиента
	s.logger.Info("GetByPortalToken: portal lookup")

	if _, err := uuid.Parse(token); err != nil {
		s.logger.Warn("GetByPortalToken: malformed token")
		return nil, fmt.Errorf("%w: malformed portal token", ErrInvalidInput)
	}

	customer, err := s.customerRepo.GetByPortalToken(ctx, token)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetByPortalToken: no customer for token")
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetByPortalToken: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByPortalToken - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomer(customer), nil
}

// List возвращает список клиентов с поиском и пагинацией
func (s *Service) List(ctx context.Context, req *models.ListCustomersRequest) (*models.CustomerListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	s.logger.Info("List: fetching customers limit=%d offset=%d search=%v", limit, offset, req.Search)

	customers, err := s.customerRepo.List(ctx, req.Search, limit, offset)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d customers", len(customers))
	return models.FromDomainCustomerList(customers), nil
}

// Update обновляет данные клиента
// Изменяются только поля, переданные в запросе
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("Update: updating customer id=%d", id)

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Update: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Update: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	applyUpdates(customer, req)

	if customer.FirstName == "" {
		s.logger.Warn("Update: empty first name for customer id=%d", id)
		return nil, fmt.Errorf("%w: first name must not be empty", ErrInvalidInput)
	}
	if customer.Email == "" {
		s.logger.Warn("Update: empty email for customer id=%d", id)
		return nil, fmt.Errorf("%w: email must not be empty", ErrInvalidInput)
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, customerRepo.ErrDuplicateEmail) {
			s.logger.Warn("Update: duplicate email for customer id=%d", id)
			return nil, ErrDuplicateEmail
		}
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Update: customer id=%d not found during update", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Update: repository error for customer id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated customer id=%d", id)
	return models.FromDomainCustomer(customer), nil
}

// Вспомогательные функции

func validateCreateRequest(req *models.CreateCustomerRequest) error {
	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: first name must not be empty", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email must not be empty", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}

	return nil
}

func applyUpdates(customer *domain.Customer, req *models.UpdateCustomerRequest) {
	if req.FirstName != nil {
		customer.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		customer.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		customer.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}
	if req.Notes != nil {
		customer.Notes = req.Notes
	}
}
