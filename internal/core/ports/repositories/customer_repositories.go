package repositories

import (
	"context"

	"github.com/duka-app/duka_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, tx pgx.Tx, customer domain.Customer) error

	// FindCustomerByID retrieves a customer by identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomerByPhone retrieves a customer by their unique phone number.
	FindCustomerByPhone(ctx context.Context, tx pgx.Tx, phone string) (*domain.Customer, error)

	// FindCustomerByName retrieves a customer by case-insensitive name match.
	FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error)

	// UpdateCustomerPhone sets a new phone number on a customer.
	UpdateCustomerPhone(ctx context.Context, customerID, phone string) (*domain.Customer, error)

	// DeleteCustomer removes a customer and returns the deleted row.
	DeleteCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
}
