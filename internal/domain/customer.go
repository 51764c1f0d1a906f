package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a clinic customer record
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     *string
	// PortalToken - непубличный токен для доступа клиента к своим бронированиям
	// через клиентский портал без аккаунта
	PortalToken uuid.UUID
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
