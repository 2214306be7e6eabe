package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction maps the transactions table. order_id carries a unique index so
// the at-most-one-per-order rule also holds at the storage level.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	OrderID       string          `db:"order_id"`
	Timestamps
}
