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

type PgxJwtSecretRepository struct {
	BaseRepository
}

func newPgxJwtSecretRepository(db *pgxpool.Pool) portsrepo.JwtSecretRepository {
	return &PgxJwtSecretRepository{BaseRepository{Pool: db}}
}

// Ensure PgxJwtSecretRepository implements portsrepo.JwtSecretRepository
var _ portsrepo.JwtSecretRepository = (*PgxJwtSecretRepository)(nil)

func toDomainJwtSecret(m models.JwtSecret) domain.JwtSecret {
	return domain.JwtSecret{
		SecretID:  m.SecretID,
		Key:       m.Key,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
	}
}

func (r *PgxJwtSecretRepository) SaveJwtSecret(ctx context.Context, secret domain.JwtSecret) error {
	query := `
		INSERT INTO jwt_secrets (secret_id, key, version, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, secret.SecretID, secret.Key, secret.Version, secret.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: signing key version %d", apperrors.ErrDuplicate, secret.Version)
		}
		return fmt.Errorf("failed to save signing key: %w", err)
	}
	return nil
}

func (r *PgxJwtSecretRepository) FindLatestJwtSecret(ctx context.Context) (*domain.JwtSecret, error) {
	query := `SELECT secret_id, key, version, created_at FROM jwt_secrets ORDER BY version DESC LIMIT 1;`
	var m models.JwtSecret
	err := r.Pool.QueryRow(ctx, query).Scan(&m.SecretID, &m.Key, &m.Version, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest signing key: %w", err)
	}
	d := toDomainJwtSecret(m)
	return &d, nil
}

func (r *PgxJwtSecretRepository) FindRecentJwtSecrets(ctx context.Context, n int) ([]domain.JwtSecret, error) {
	query := `SELECT secret_id, key, version, created_at FROM jwt_secrets ORDER BY version DESC LIMIT $1;`
	rows, err := r.Pool.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent signing keys: %w", err)
	}
	defer rows.Close()

	secrets := make([]domain.JwtSecret, 0, n)
	for rows.Next() {
		var m models.JwtSecret
		if err := rows.Scan(&m.SecretID, &m.Key, &m.Version, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan signing key row: %w", err)
		}
		secrets = append(secrets, toDomainJwtSecret(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating signing key rows: %w", err)
	}
	return secrets, nil
}
