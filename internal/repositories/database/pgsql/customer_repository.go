package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	"github.com/duka-app/duka_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(db *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{BaseRepository{Pool: db}}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepository
var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

func toModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:  d.CustomerID,
		Name:        d.Name,
		Phone:       d.Phone,
		Role:        string(d.Role),
		SavedOrders: d.SavedOrders,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		Phone:       m.Phone,
		Role:        domain.CustomerRole(m.Role),
		SavedOrders: m.SavedOrders,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

const customerColumns = `customer_id, name, phone, role, saved_orders, created_at, updated_at`

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.Name,
		&m.Phone,
		&m.Role,
		&m.SavedOrders,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, tx pgx.Tx, customer domain.Customer) error {
	m := toModelCustomer(customer)
	query := `
		INSERT INTO customers (customer_id, name, phone, role, saved_orders, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.runner(tx).Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.Phone,
		m.Role,
		m.SavedOrders,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: customer with phone %s", apperrors.ErrDuplicate, customer.Phone)
		}
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	d := toDomainCustomer(m)
	return &d, nil
}

func (r *PgxCustomerRepository) FindCustomerByPhone(ctx context.Context, tx pgx.Tx, phone string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE phone = $1;`
	m, err := scanCustomer(r.runner(tx).QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by phone: %w", err)
	}
	d := toDomainCustomer(m)
	return &d, nil
}

func (r *PgxCustomerRepository) FindCustomerByName(ctx context.Context, name string) (*domain.Customer, error) {
	// Case-insensitive partial match, oldest customer wins ties.
	query := `SELECT ` + customerColumns + ` FROM customers WHERE name ILIKE '%' || $1 || '%' ORDER BY created_at LIMIT 1;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by name: %w", err)
	}
	d := toDomainCustomer(m)
	return &d, nil
}

func (r *PgxCustomerRepository) UpdateCustomerPhone(ctx context.Context, customerID, phone string) (*domain.Customer, error) {
	query := `
		UPDATE customers
		SET phone = $2, updated_at = now()
		WHERE customer_id = $1
		RETURNING ` + customerColumns + `;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: customer with phone %s", apperrors.ErrDuplicate, phone)
		}
		return nil, fmt.Errorf("failed to update phone for customer %s: %w", customerID, err)
	}
	d := toDomainCustomer(m)
	return &d, nil
}

func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `DELETE FROM customers WHERE customer_id = $1 RETURNING ` + customerColumns + `;`
	m, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	d := toDomainCustomer(m)
	return &d, nil
}
