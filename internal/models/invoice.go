package models

import "time"

// Invoice maps the invoices table.
type Invoice struct {
	InvoiceID     string    `db:"invoice_id"`
	InvoiceNumber string    `db:"invoice_number"`
	DueDate       time.Time `db:"due_date"`
	CustomerID    string    `db:"customer_id"`
	TransactionID string    `db:"transaction_id"`
	Timestamps
}
