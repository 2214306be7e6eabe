package domain

import "time"

// Invoice references the transaction it bills and the customer it is addressed to.
type Invoice struct {
	InvoiceID     string    `json:"invoiceID"`
	InvoiceNumber string    `json:"invoiceNumber"` // unique, e.g. INV-482113956
	DueDate       time.Time `json:"dueDate"`
	CustomerID    string    `json:"customerID"`
	TransactionID string    `json:"transactionID"`
	Timestamps
}
