package services

import (
	"context"

	"github.com/duka-app/duka_backend/internal/core/domain"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionSvcFacade manages the financial transactions anchored to orders.
// Session ownership follows the same rule as OrderSvcFacade: a non-nil tx
// belongs to the caller, a nil tx makes the service open and settle its own.
type TransactionSvcFacade interface {
	// CreateTransactionForOrder records the transaction derived from an order.
	// txnType defaults to income when empty.
	CreateTransactionForOrder(ctx context.Context, orderID string, amount decimal.Decimal, txnType domain.TransactionType, tx pgx.Tx) (*domain.Transaction, error)

	// CreateTransaction records a transaction for an order with the amount
	// derived from the order itself (price * quantity).
	CreateTransaction(ctx context.Context, orderID string, txnType domain.TransactionType) (*domain.Transaction, error)

	// UpdateTransactionForOrder sets a new amount (and refreshes the date) on
	// the transaction paired with orderID.
	UpdateTransactionForOrder(ctx context.Context, orderID string, newAmount decimal.Decimal, tx pgx.Tx) (*domain.Transaction, error)

	// DeleteTransactionForOrder removes the transaction paired with orderID.
	DeleteTransactionForOrder(ctx context.Context, orderID string, tx pgx.Tx) error

	// FindTransaction looks up by transaction ID first, then order ID.
	// A query with neither key returns (nil, nil).
	FindTransaction(ctx context.Context, query dto.FindTransactionQuery) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction by its own identifier,
	// independent of any order coupling.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
