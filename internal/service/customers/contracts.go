package customers

import (
	"context"

	"github.com/glowcare/clinic-booking/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByPortalToken(ctx context.Context, token string) (*domain.Customer, error)
	List(ctx context.Context, search *string, limit, offset int) ([]*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
