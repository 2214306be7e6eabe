package repositories

import (
	"context"
	"time"

	"github.com/duka-app/duka_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// OrderReader defines read operations for order data.
type OrderReader interface {
	// FindOrderByID retrieves a specific order by its unique identifier.
	FindOrderByID(ctx context.Context, tx pgx.Tx, orderID string) (*domain.Order, error)

	// FindOrdersByCustomerID retrieves all orders belonging to one customer.
	FindOrdersByCustomerID(ctx context.Context, customerID string) ([]domain.Order, error)

	// FindOrdersByDateRange retrieves orders created within [start, end], both inclusive.
	FindOrdersByDateRange(ctx context.Context, start, end time.Time) ([]domain.Order, error)
}

// OrderWriter defines write operations for order data. Methods take an
// optional transaction; nil means the write runs against the pool directly.
type OrderWriter interface {
	// SaveOrder persists a new order.
	SaveOrder(ctx context.Context, tx pgx.Tx, order domain.Order) error

	// UpdateOrder persists the full current state of an existing order.
	UpdateOrder(ctx context.Context, tx pgx.Tx, order domain.Order) error

	// DeleteOrder removes an order and returns the deleted row.
	DeleteOrder(ctx context.Context, tx pgx.Tx, orderID string) (*domain.Order, error)
}

// OrderRepositoryFacade combines all order repository interfaces.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}

// OrderRepositoryWithTx extends OrderRepositoryFacade with transaction capabilities.
type OrderRepositoryWithTx interface {
	OrderRepositoryFacade
	TransactionManager
}
