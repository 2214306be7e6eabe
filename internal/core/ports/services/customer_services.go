package services

import (
	"context"

	"github.com/duka-app/duka_backend/internal/core/domain"
	"github.com/duka-app/duka_backend/internal/dto"
)

// CustomerSvcFacade manages customers.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomerByPhoneOrName treats a numeric value as a phone number and
	// anything else as a case-insensitive name.
	FindCustomerByPhoneOrName(ctx context.Context, value string) (*domain.Customer, error)

	UpdateCustomerPhone(ctx context.Context, customerID, newPhone string) (*domain.Customer, error)
}
