package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	"github.com/duka-app/duka_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository{Pool: db}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

// Helper to convert domain.Transaction to models.Transaction
func toModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		Date:          d.Date,
		OrderID:       d.OrderID,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// Helper to convert models.Transaction to domain.Transaction
func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Date:          m.Date,
		OrderID:       m.OrderID,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

const transactionColumns = `transaction_id, type, amount, date, order_id, created_at, updated_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Type,
		&m.Amount,
		&m.Date,
		&m.OrderID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, type, amount, date, order_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.runner(tx).Exec(ctx, query,
		m.TransactionID,
		m.Type,
		m.Amount,
		m.Date,
		m.OrderID,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction for order %s", apperrors.ErrDuplicate, txn.OrderID)
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := toDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) FindTransactionByOrderID(ctx context.Context, tx pgx.Tx, orderID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE order_id = $1;`
	m, err := scanTransaction(r.runner(tx).QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction for order %s: %w", orderID, err)
	}
	d := toDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) UpdateTransactionAmountByOrderID(ctx context.Context, tx pgx.Tx, orderID string, amount decimal.Decimal, date time.Time) (int64, error) {
	query := `
		UPDATE transactions
		SET amount = $2, date = $3, updated_at = $3
		WHERE order_id = $1;
	`
	tag, err := r.runner(tx).Exec(ctx, query, orderID, amount, date)
	if err != nil {
		return 0, fmt.Errorf("failed to update transaction amount for order %s: %w", orderID, err)
	}
	return tag.RowsAffected(), nil
}

func (r *PgxTransactionRepository) DeleteTransactionByOrderID(ctx context.Context, tx pgx.Tx, orderID string) (int64, error) {
	query := `DELETE FROM transactions WHERE order_id = $1;`
	tag, err := r.runner(tx).Exec(ctx, query, orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transaction for order %s: %w", orderID, err)
	}
	return tag.RowsAffected(), nil
}

func (r *PgxTransactionRepository) DeleteTransactionByID(ctx context.Context, transactionID string) (int64, error) {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	return tag.RowsAffected(), nil
}
