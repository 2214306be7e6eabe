package services

import (
	"context"

	"github.com/duka-app/duka_backend/internal/core/domain"
	"github.com/duka-app/duka_backend/internal/dto"
)

// InvoiceSvcFacade manages invoices referencing customers and transactions.
type InvoiceSvcFacade interface {
	// CreateInvoice persists an invoice after verifying that the referenced
	// customer and transaction exist. Generates an invoice number when the
	// request omits one.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	GetInvoicesByCustomer(ctx context.Context, customerID string) ([]domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
}
