package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/duka-app/duka_backend/internal/middleware"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrTransactionExists   = errors.New("a transaction already exists for this order")
	ErrNonPositiveAmount   = errors.New("transaction amount must be greater than zero")
)

// transactionService provides core operations for the financial transactions
// anchored to orders.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryWithTx
	orderRepo       portsrepo.OrderRepositoryWithTx
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryWithTx, orderRepo portsrepo.OrderRepositoryWithTx) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		orderRepo:       orderRepo,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransactionForOrder records the transaction derived from an order.
// The order must exist and must not already have a transaction; the amount
// must be strictly positive. Session ownership follows the shared rule: a nil
// tx makes the service open and settle its own transaction.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) CreateTransactionForOrder(ctx context.Context, orderID string, amount decimal.Decimal, txnType domain.TransactionType, tx pgx.Tx) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNonPositiveAmount)
	}
	if txnType == "" {
		txnType = domain.Income
	}
	if txnType != domain.Income && txnType != domain.Expense {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, txnType)
	}

	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = s.transactionRepo.Begin(ctx)
		if err != nil {
			logger.Error("Failed to begin transaction for CreateTransactionForOrder", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer s.transactionRepo.Rollback(ctx, tx)
	}

	if _, err := s.orderRepo.FindOrderByID(ctx, tx, orderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrOrderNotFound, orderID)
		}
		logger.Error("Failed to verify order for transaction", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}

	existing, err := s.transactionRepo.FindTransactionByOrderID(ctx, tx, orderID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for duplicate transaction", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to check for existing transaction: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: order %s", ErrTransactionExists, orderID)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          txnType,
		Amount:        amount,
		Date:          now,
		OrderID:       orderID,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, tx, txn); err != nil {
		logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if ownTx {
		if err := s.transactionRepo.Commit(ctx, tx); err != nil {
			logger.Error("Failed to commit CreateTransactionForOrder transaction", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID), slog.String("order_id", orderID))
	return &txn, nil
}

// CreateTransaction records a transaction for an order with the amount
// derived from the order itself. The whole operation runs in one
// service-owned transaction.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) CreateTransaction(ctx context.Context, orderID string, txnType domain.TransactionType) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.transactionRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction for CreateTransaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.transactionRepo.Rollback(ctx, tx)

	order, err := s.orderRepo.FindOrderByID(ctx, tx, orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrOrderNotFound, orderID)
		}
		logger.Error("Failed to find order for transaction", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to find order %s: %w", orderID, err)
	}

	txn, err := s.CreateTransactionForOrder(ctx, orderID, order.DerivedAmount(), txnType, tx)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit CreateTransaction transaction", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return txn, nil
}

// UpdateTransactionForOrder sets a new amount and refreshes the date on the
// transaction paired with orderID.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) UpdateTransactionForOrder(ctx context.Context, orderID string, newAmount decimal.Decimal, tx pgx.Tx) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if newAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNonPositiveAmount)
	}

	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = s.transactionRepo.Begin(ctx)
		if err != nil {
			logger.Error("Failed to begin transaction for UpdateTransactionForOrder", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer s.transactionRepo.Rollback(ctx, tx)
	}

	now := time.Now().UTC()
	rows, err := s.transactionRepo.UpdateTransactionAmountByOrderID(ctx, tx, orderID, newAmount, now)
	if err != nil {
		logger.Error("Failed to update transaction amount", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to update transaction for order %s: %w", orderID, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: order %s", ErrTransactionNotFound, orderID)
	}

	txn, err := s.transactionRepo.FindTransactionByOrderID(ctx, tx, orderID)
	if err != nil {
		logger.Error("Failed to reload transaction after update", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return nil, fmt.Errorf("failed to reload transaction for order %s: %w", orderID, err)
	}

	if ownTx {
		if err := s.transactionRepo.Commit(ctx, tx); err != nil {
			logger.Error("Failed to commit UpdateTransactionForOrder transaction", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	logger.Info("Transaction updated successfully", slog.String("transaction_id", txn.TransactionID), slog.String("order_id", orderID))
	return txn, nil
}

// DeleteTransactionForOrder removes the transaction paired with orderID.
// Zero rows deleted means no transaction existed for the order.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) DeleteTransactionForOrder(ctx context.Context, orderID string, tx pgx.Tx) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	ownTx := tx == nil
	if ownTx {
		var err error
		tx, err = s.transactionRepo.Begin(ctx)
		if err != nil {
			logger.Error("Failed to begin transaction for DeleteTransactionForOrder", slog.String("error", err.Error()))
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer s.transactionRepo.Rollback(ctx, tx)
	}

	rows, err := s.transactionRepo.DeleteTransactionByOrderID(ctx, tx, orderID)
	if err != nil {
		logger.Error("Failed to delete transaction by order", slog.String("error", err.Error()), slog.String("order_id", orderID))
		return fmt.Errorf("failed to delete transaction for order %s: %w", orderID, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: order %s", ErrTransactionNotFound, orderID)
	}

	if ownTx {
		if err := s.transactionRepo.Commit(ctx, tx); err != nil {
			logger.Error("Failed to commit DeleteTransactionForOrder transaction", slog.String("error", err.Error()))
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	logger.Info("Transaction deleted for order", slog.String("order_id", orderID))
	return nil
}

// FindTransaction looks a transaction up by its own ID first, then by order
// ID. A query carrying neither key returns (nil, nil).
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) FindTransaction(ctx context.Context, query dto.FindTransactionQuery) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	switch {
	case query.TransactionID != "":
		txn, err := s.transactionRepo.FindTransactionByID(ctx, query.TransactionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: ID %s", ErrTransactionNotFound, query.TransactionID)
			}
			logger.Error("Failed to find transaction by ID", slog.String("error", err.Error()), slog.String("transaction_id", query.TransactionID))
			return nil, fmt.Errorf("failed to find transaction %s: %w", query.TransactionID, err)
		}
		return txn, nil
	case query.OrderID != "":
		txn, err := s.transactionRepo.FindTransactionByOrderID(ctx, nil, query.OrderID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: order %s", ErrTransactionNotFound, query.OrderID)
			}
			logger.Error("Failed to find transaction by order ID", slog.String("error", err.Error()), slog.String("order_id", query.OrderID))
			return nil, fmt.Errorf("failed to find transaction for order %s: %w", query.OrderID, err)
		}
		return txn, nil
	default:
		return nil, nil
	}
}

// DeleteTransaction removes a transaction by its own identifier, regardless of
// whether its order still exists.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	rows, err := s.transactionRepo.DeleteTransactionByID(ctx, transactionID)
	if err != nil {
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: ID %s", ErrTransactionNotFound, transactionID)
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
