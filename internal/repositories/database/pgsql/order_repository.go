package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	"github.com/duka-app/duka_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(db *pgxpool.Pool) portsrepo.OrderRepositoryWithTx {
	return &PgxOrderRepository{BaseRepository{Pool: db}}
}

// Ensure PgxOrderRepository implements portsrepo.OrderRepositoryWithTx
var _ portsrepo.OrderRepositoryWithTx = (*PgxOrderRepository)(nil)

// Helper to convert domain.Order to models.Order
func toModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:     d.OrderID,
		Name:        d.Name,
		Description: sql.NullString{String: d.Description, Valid: d.Description != ""},
		Category:    sql.NullString{String: d.Category, Valid: d.Category != ""},
		Price:       d.Price,
		Quantity:    d.Quantity,
		CustomerID:  d.CustomerID,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// Helper to convert models.Order to domain.Order
func toDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:     m.OrderID,
		Name:        m.Name,
		Description: m.Description.String,
		Category:    m.Category.String,
		Price:       m.Price,
		Quantity:    m.Quantity,
		CustomerID:  m.CustomerID,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

const orderColumns = `order_id, name, description, category, price, quantity, customer_id, created_at, updated_at`

func scanOrder(row pgx.Row) (models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID,
		&m.Name,
		&m.Description,
		&m.Category,
		&m.Price,
		&m.Quantity,
		&m.CustomerID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxOrderRepository) SaveOrder(ctx context.Context, tx pgx.Tx, order domain.Order) error {
	m := toModelOrder(order)
	query := `
		INSERT INTO orders (order_id, name, description, category, price, quantity, customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.runner(tx).Exec(ctx, query,
		m.OrderID,
		m.Name,
		m.Description,
		m.Category,
		m.Price,
		m.Quantity,
		m.CustomerID,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, tx pgx.Tx, orderID string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1;`
	m, err := scanOrder(r.runner(tx).QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order by ID %s: %w", orderID, err)
	}
	d := toDomainOrder(m)
	return &d, nil
}

func (r *PgxOrderRepository) FindOrdersByCustomerID(ctx context.Context, customerID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *PgxOrderRepository) FindOrdersByDateRange(ctx context.Context, start, end time.Time) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders between %s and %s: %w", start, end, err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	orders := make([]domain.Order, 0)
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, toDomainOrder(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}

func (r *PgxOrderRepository) UpdateOrder(ctx context.Context, tx pgx.Tx, order domain.Order) error {
	m := toModelOrder(order)
	query := `
		UPDATE orders
		SET name = $2, description = $3, category = $4, price = $5, quantity = $6, updated_at = $7
		WHERE order_id = $1;
	`
	tag, err := r.runner(tx).Exec(ctx, query,
		m.OrderID,
		m.Name,
		m.Description,
		m.Category,
		m.Price,
		m.Quantity,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update order %s: %w", order.OrderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("order %s not found for update", order.OrderID))
	}
	return nil
}

func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, tx pgx.Tx, orderID string) (*domain.Order, error) {
	query := `DELETE FROM orders WHERE order_id = $1 RETURNING ` + orderColumns + `;`
	m, err := scanOrder(r.runner(tx).QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete order %s: %w", orderID, err)
	}
	d := toDomainOrder(m)
	return &d, nil
}
