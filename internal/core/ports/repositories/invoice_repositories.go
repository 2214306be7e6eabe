package repositories

import (
	"context"

	"github.com/duka-app/duka_backend/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	FindInvoicesByCustomerID(ctx context.Context, customerID string) ([]domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) (int64, error)
}
