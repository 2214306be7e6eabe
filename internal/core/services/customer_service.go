package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/duka-app/duka_backend/internal/middleware"
)

var ErrDuplicatePhone = errors.New("a customer with this phone number already exists")

// customerService provides customer management operations.
type customerService struct {
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepository) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

// Ensure customerService implements the portssvc.CustomerSvcFacade interface
var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer creates a new customer keyed by a unique phone number.
// Implements portssvc.CustomerSvcFacade
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Role:       domain.CustomerRole(req.Role),
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, nil, customer); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePhone, req.Phone)
		}
		logger.Error("Failed to save customer", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	logger.Info("Customer created successfully", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

// DeleteCustomer removes a customer and returns the deleted record.
// Implements portssvc.CustomerSvcFacade
func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	deleted, err := s.customerRepo.DeleteCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrCustomerNotFound, customerID)
		}
		logger.Error("Failed to delete customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}

	logger.Info("Customer deleted", slog.String("customer_id", customerID))
	return deleted, nil
}

// FindCustomerByPhoneOrName resolves a customer from a single free-form
// value: all-digit values are treated as a phone number, anything else as a
// case-insensitive name match.
// Implements portssvc.CustomerSvcFacade
func (s *customerService) FindCustomerByPhoneOrName(ctx context.Context, value string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var (
		customer *domain.Customer
		err      error
	)
	if isNumeric(value) {
		customer, err = s.customerRepo.FindCustomerByPhone(ctx, nil, value)
	} else {
		customer, err = s.customerRepo.FindCustomerByName(ctx, value)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, value)
		}
		logger.Error("Failed to find customer", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return customer, nil
}

// UpdateCustomerPhone sets a new phone number on a customer.
// Implements portssvc.CustomerSvcFacade
func (s *customerService) UpdateCustomerPhone(ctx context.Context, customerID, newPhone string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	updated, err := s.customerRepo.UpdateCustomerPhone(ctx, customerID, newPhone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrCustomerNotFound, customerID)
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePhone, newPhone)
		}
		logger.Error("Failed to update customer phone", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update phone for customer %s: %w", customerID, err)
	}

	logger.Info("Customer phone updated", slog.String("customer_id", customerID))
	return updated, nil
}

// isNumeric reports whether s is non-empty and consists solely of digits,
// ignoring a leading plus sign.
func isNumeric(s string) bool {
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
