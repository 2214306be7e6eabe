package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/duka-app/duka_backend/internal/middleware"
	"github.com/duka-app/duka_backend/internal/utils"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

// invoiceService provides invoice operations. Invoices always reference an
// existing customer and transaction.
type invoiceService struct {
	invoiceRepo     portsrepo.InvoiceRepository
	customerRepo    portsrepo.CustomerRepository
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepository, customerRepo portsrepo.CustomerRepository, transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:     invoiceRepo,
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
	}
}

// Ensure invoiceService implements the portssvc.InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice persists an invoice after verifying its customer and
// transaction references. An omitted invoice number is generated.
// Implements portssvc.InvoiceSvcFacade
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrCustomerNotFound, req.CustomerID)
		}
		logger.Error("Failed to verify customer for invoice", slog.String("error", err.Error()), slog.String("customer_id", req.CustomerID))
		return nil, fmt.Errorf("failed to find customer %s: %w", req.CustomerID, err)
	}
	if _, err := s.transactionRepo.FindTransactionByID(ctx, req.TransactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrTransactionNotFound, req.TransactionID)
		}
		logger.Error("Failed to verify transaction for invoice", slog.String("error", err.Error()), slog.String("transaction_id", req.TransactionID))
		return nil, fmt.Errorf("failed to find transaction %s: %w", req.TransactionID, err)
	}

	number := req.InvoiceNumber
	if number == "" {
		number = utils.GenerateInvoiceNumber()
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: number,
		DueDate:       req.DueDate,
		CustomerID:    req.CustomerID,
		TransactionID: req.TransactionID,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, number)
		}
		logger.Error("Failed to save invoice", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	logger.Info("Invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("invoice_number", number))
	return &invoice, nil
}

// GetInvoice retrieves one invoice by ID.
// Implements portssvc.InvoiceSvcFacade
func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrInvoiceNotFound, invoiceID)
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

// GetInvoicesByCustomer lists invoices addressed to one customer. An unknown
// customer yields an empty list, not an error.
// Implements portssvc.InvoiceSvcFacade
func (s *invoiceService) GetInvoicesByCustomer(ctx context.Context, customerID string) ([]domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Invoice{}, nil
		}
		logger.Error("Failed to resolve customer for invoice listing", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}

	invoices, err := s.invoiceRepo.FindInvoicesByCustomerID(ctx, customerID)
	if err != nil {
		logger.Error("Failed to list invoices by customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to list invoices for customer %s: %w", customerID, err)
	}
	return invoices, nil
}

// DeleteInvoice removes an invoice by ID.
// Implements portssvc.InvoiceSvcFacade
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID)
	if err != nil {
		logger.Error("Failed to delete invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: ID %s", ErrInvoiceNotFound, invoiceID)
	}

	logger.Info("Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}
