package services

import (
	"context"

	"github.com/duka-app/duka_backend/internal/core/domain"
)

// TokenClaims is the subset of JWT claims the rest of the system consumes.
type TokenClaims struct {
	BusinessID string
	Phone      string
}

// KeyringSvcFacade manages the rotating HMAC signing keys and the tokens
// signed with them.
type KeyringSvcFacade interface {
	// Current returns the current signing key, creating version 1 when the
	// store holds none. The result is cached until Rotate or Invalidate.
	Current(ctx context.Context) (*domain.JwtSecret, error)

	// Rotate stores a fresh key at version current+1 and makes it current.
	Rotate(ctx context.Context) (*domain.JwtSecret, error)

	// Invalidate drops the cached key so the next Current hits the store.
	Invalidate()

	// IssueToken signs a token for the business with the current key.
	IssueToken(ctx context.Context, business *domain.Business) (string, error)

	// VerifyToken validates a token against the newest keys, tolerating
	// tokens signed with the key immediately preceding a rotation.
	VerifyToken(ctx context.Context, token string) (*TokenClaims, error)
}
