package dto

import (
	"time"

	"github.com/duka-app/duka_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the input for creating a transaction
// directly. The amount is always derived from the referenced order.
type CreateTransactionRequest struct {
	OrderID string `json:"orderID" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=income expense"`
}

// FindTransactionQuery looks a transaction up by its own ID or by order ID.
type FindTransactionQuery struct {
	TransactionID string `json:"transactionID" form:"transactionID"`
	OrderID       string `json:"orderID" form:"orderID"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	OrderID       string          `json:"orderID"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          string(txn.Type),
		Amount:        txn.Amount,
		Date:          txn.Date,
		OrderID:       txn.OrderID,
	}
}
