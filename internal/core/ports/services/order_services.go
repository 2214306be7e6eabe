package services

import (
	"context"
	"time"

	"github.com/duka-app/duka_backend/internal/core/domain"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CreateOrderResult is the outcome of creating an order: the saved order plus
// the data the caller needs to create the paired transaction.
type CreateOrderResult struct {
	Order           domain.Order
	TransactionData TransactionData
}

// TransactionData is the payload handed to the transaction service after an
// order write: the derived amount and the order it belongs to.
type TransactionData struct {
	Amount  decimal.Decimal
	OrderID string
}

// UpdateOrderResult is the outcome of an order update. When the update touched
// price or quantity, RequiresTransactionUpdate is true and NewAmount carries
// the recomputed price*quantity for the caller to apply to the paired
// transaction.
type UpdateOrderResult struct {
	Order                     domain.Order
	RequiresTransactionUpdate bool
	NewAmount                 decimal.Decimal
}

// DeleteOrderResult is the outcome of an order delete. The paired transaction
// must be removed by the caller whenever RequiresTransactionDeletion is true.
type DeleteOrderResult struct {
	DeletedOrder                domain.Order
	RequiresTransactionDeletion bool
}

// OrderSvcFacade manages orders and originates the data for their paired
// transactions. The tx parameter on mutating operations is the shared
// datastore session: when non-nil the caller owns its lifecycle; when nil the
// service runs the operation inside one transaction of its own.
type OrderSvcFacade interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, tx pgx.Tx) (*CreateOrderResult, error)
	UpdateOrder(ctx context.Context, orderID string, req dto.UpdateOrderRequest, tx pgx.Tx) (*UpdateOrderResult, error)
	DeleteOrder(ctx context.Context, orderID string, tx pgx.Tx) (*DeleteOrderResult, error)
	GetOrdersByUser(ctx context.Context, query dto.OrdersByUserQuery) ([]domain.Order, error)
	GetOrdersByDate(ctx context.Context, date time.Time) ([]domain.Order, error)
}
