package dto

import (
	"time"

	"github.com/duka-app/duka_backend/internal/core/domain"
)

// CreateInvoiceRequest defines the input for creating an invoice.
// InvoiceNumber is generated when omitted.
type CreateInvoiceRequest struct {
	InvoiceNumber string    `json:"invoiceNumber"`
	DueDate       time.Time `json:"dueDate"`
	CustomerID    string    `json:"customerID" binding:"required"`
	TransactionID string    `json:"transactionID" binding:"required"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string    `json:"invoiceID"`
	InvoiceNumber string    `json:"invoiceNumber"`
	DueDate       time.Time `json:"dueDate"`
	CustomerID    string    `json:"customerID"`
	TransactionID string    `json:"transactionID"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListInvoicesResponse wraps a list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		DueDate:       inv.DueDate,
		CustomerID:    inv.CustomerID,
		TransactionID: inv.TransactionID,
		CreatedAt:     inv.CreatedAt,
	}
}

// ToListInvoicesResponse converts a slice of domain.Invoice to ListInvoicesResponse.
func ToListInvoicesResponse(invoices []domain.Invoice) ListInvoicesResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return ListInvoicesResponse{Invoices: responses}
}
