package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is the financial record derived from exactly one Order.
// Its amount equals the order's price * quantity; at most one transaction
// exists per order.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // positive
	Date          time.Time       `json:"date"`
	OrderID       string          `json:"orderID"`
	Timestamps
}
