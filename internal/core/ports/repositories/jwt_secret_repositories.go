package repositories

import (
	"context"

	"github.com/duka-app/duka_backend/internal/core/domain"
)

// JwtSecretRepository defines persistence operations for rotating signing keys.
type JwtSecretRepository interface {
	// SaveJwtSecret persists a new key version.
	SaveJwtSecret(ctx context.Context, secret domain.JwtSecret) error

	// FindLatestJwtSecret returns the highest-version key.
	FindLatestJwtSecret(ctx context.Context) (*domain.JwtSecret, error)

	// FindRecentJwtSecrets returns up to n keys, newest version first.
	FindRecentJwtSecrets(ctx context.Context, n int) ([]domain.JwtSecret, error)
}
