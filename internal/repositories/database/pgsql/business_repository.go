package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	"github.com/duka-app/duka_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBusinessRepository struct {
	BaseRepository
}

func newPgxBusinessRepository(db *pgxpool.Pool) portsrepo.BusinessRepository {
	return &PgxBusinessRepository{BaseRepository{Pool: db}}
}

// Ensure PgxBusinessRepository implements portsrepo.BusinessRepository
var _ portsrepo.BusinessRepository = (*PgxBusinessRepository)(nil)

func toModelBusiness(d domain.Business) models.Business {
	return models.Business{
		BusinessID:   d.BusinessID,
		Name:         d.Name,
		Industry:     sql.NullString{String: d.Industry, Valid: d.Industry != ""},
		Address:      sql.NullString{String: d.Address, Valid: d.Address != ""},
		Phone:        d.Phone,
		Email:        sql.NullString{String: d.Email, Valid: d.Email != ""},
		PasswordHash: d.PasswordHash,
		Timestamps: models.Timestamps{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID:   m.BusinessID,
		Name:         m.Name,
		Industry:     m.Industry.String,
		Address:      m.Address.String,
		Phone:        m.Phone,
		Email:        m.Email.String,
		PasswordHash: m.PasswordHash,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

const businessColumns = `business_id, name, industry, address, phone, email, password_hash, created_at, updated_at`

func scanBusiness(row pgx.Row) (models.Business, error) {
	var m models.Business
	err := row.Scan(
		&m.BusinessID,
		&m.Name,
		&m.Industry,
		&m.Address,
		&m.Phone,
		&m.Email,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	m := toModelBusiness(business)
	query := `
		INSERT INTO businesses (business_id, name, industry, address, phone, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BusinessID,
		m.Name,
		m.Industry,
		m.Address,
		m.Phone,
		m.Email,
		m.PasswordHash,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: business with phone %s", apperrors.ErrDuplicate, business.Phone)
		}
		return fmt.Errorf("failed to save business: %w", err)
	}
	return nil
}

func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE business_id = $1;`
	m, err := scanBusiness(r.Pool.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business by ID %s: %w", businessID, err)
	}
	d := toDomainBusiness(m)
	return &d, nil
}

func (r *PgxBusinessRepository) FindBusinessByPhone(ctx context.Context, phone string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE phone = $1;`
	m, err := scanBusiness(r.Pool.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business by phone: %w", err)
	}
	d := toDomainBusiness(m)
	return &d, nil
}

func (r *PgxBusinessRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	m := toModelBusiness(business)
	query := `
		UPDATE businesses
		SET name = $2, industry = $3, address = $4, email = $5, updated_at = $6
		WHERE business_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BusinessID,
		m.Name,
		m.Industry,
		m.Address,
		m.Email,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update business %s: %w", business.BusinessID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("business %s not found for update", business.BusinessID))
	}
	return nil
}

func (r *PgxBusinessRepository) DeleteBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `DELETE FROM businesses WHERE business_id = $1 RETURNING ` + businessColumns + `;`
	m, err := scanBusiness(r.Pool.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete business %s: %w", businessID, err)
	}
	d := toDomainBusiness(m)
	return &d, nil
}
