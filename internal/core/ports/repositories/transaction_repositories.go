package repositories

import (
	"context"
	"time"

	"github.com/duka-app/duka_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for financial transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionByOrderID retrieves the single transaction paired with an order.
	FindTransactionByOrderID(ctx context.Context, tx pgx.Tx, orderID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for financial transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// UpdateTransactionAmountByOrderID sets a new amount and date on the
	// transaction paired with orderID, returning the number of rows updated.
	UpdateTransactionAmountByOrderID(ctx context.Context, tx pgx.Tx, orderID string, amount decimal.Decimal, date time.Time) (int64, error)

	// DeleteTransactionByOrderID removes the transaction paired with orderID,
	// returning the number of rows deleted.
	DeleteTransactionByOrderID(ctx context.Context, tx pgx.Tx, orderID string) (int64, error)

	// DeleteTransactionByID removes a transaction by its own identifier,
	// returning the number of rows deleted.
	DeleteTransactionByID(ctx context.Context, transactionID string) (int64, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with
// transaction capabilities.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
