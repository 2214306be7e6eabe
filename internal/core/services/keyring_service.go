package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/middleware"
	"github.com/duka-app/duka_backend/internal/utils"
)

var ErrInvalidToken = errors.New("invalid or expired token")

const signingKeyBytes = 32 // 256-bit HMAC secrets

// keyringService manages the rotating JWT signing keys. The current key is
// cached behind a RWMutex so token issuance does not hit the store on every
// request; Rotate and Invalidate refresh the cache.
type keyringService struct {
	secretRepo  portsrepo.JwtSecretRepository
	tokenExpiry time.Duration
	issuer      string

	mu     sync.RWMutex
	cached *domain.JwtSecret
}

// NewKeyringService creates a new KeyringService.
func NewKeyringService(secretRepo portsrepo.JwtSecretRepository, tokenExpiry time.Duration, issuer string) portssvc.KeyringSvcFacade {
	return &keyringService{
		secretRepo:  secretRepo,
		tokenExpiry: tokenExpiry,
		issuer:      issuer,
	}
}

// Ensure keyringService implements the portssvc.KeyringSvcFacade interface
var _ portssvc.KeyringSvcFacade = (*keyringService)(nil)

// Current returns the current signing key. When the store holds no key at
// all, version 1 is created on the spot so a fresh deployment can issue
// tokens without manual seeding.
// Implements portssvc.KeyringSvcFacade
func (s *keyringService) Current(ctx context.Context) (*domain.JwtSecret, error) {
	s.mu.RLock()
	if s.cached != nil {
		secret := s.cached
		s.mu.RUnlock()
		return secret, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}

	latest, err := s.secretRepo.FindLatestJwtSecret(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load current signing key: %w", err)
		}
		latest, err = s.storeNewKey(ctx, 1)
		if err != nil {
			return nil, err
		}
	}

	s.cached = latest
	return latest, nil
}

// Rotate stores a fresh key at version current+1 and makes it the cached
// current key. Tokens signed with the previous version stay verifiable.
// Implements portssvc.KeyringSvcFacade
func (s *keyringService) Rotate(ctx context.Context) (*domain.JwtSecret, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	version := 1
	latest, err := s.secretRepo.FindLatestJwtSecret(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load latest signing key: %w", err)
	}
	if latest != nil {
		version = latest.Version + 1
	}

	rotated, err := s.storeNewKey(ctx, version)
	if err != nil {
		return nil, err
	}
	s.cached = rotated

	logger.Info("JWT signing key rotated", slog.Int("version", version))
	return rotated, nil
}

// Invalidate drops the cached key so the next Current call hits the store.
// Implements portssvc.KeyringSvcFacade
func (s *keyringService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// storeNewKey generates and persists a signing key at the given version.
// Callers must hold the write lock.
func (s *keyringService) storeNewKey(ctx context.Context, version int) (*domain.JwtSecret, error) {
	key, err := utils.GenerateSecureRandomString(signingKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate signing key: %w", err)
	}

	secret := domain.JwtSecret{
		SecretID:  uuid.NewString(),
		Key:       key,
		Version:   version,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.secretRepo.SaveJwtSecret(ctx, secret); err != nil {
		return nil, fmt.Errorf("failed to save signing key version %d: %w", version, err)
	}
	return &secret, nil
}

// IssueToken signs a token for the business with the current key.
// Implements portssvc.KeyringSvcFacade
func (s *keyringService) IssueToken(ctx context.Context, business *domain.Business) (string, error) {
	secret, err := s.Current(ctx)
	if err != nil {
		return "", err
	}

	token, err := utils.GenerateJWT(business.BusinessID, business.Phone, secret.Key, secret.Version, s.tokenExpiry, s.issuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// VerifyToken validates a token against the newest two key versions, so
// tokens issued just before a rotation remain valid until they expire.
// Implements portssvc.KeyringSvcFacade
func (s *keyringService) VerifyToken(ctx context.Context, token string) (*portssvc.TokenClaims, error) {
	secrets, err := s.secretRepo.FindRecentJwtSecrets(ctx, 2)
	if err != nil {
		return nil, fmt.Errorf("failed to load signing keys: %w", err)
	}

	for _, secret := range secrets {
		claims, err := utils.ParseAndValidateJWT(token, secret.Key)
		if err != nil {
			continue
		}
		return &portssvc.TokenClaims{
			BusinessID: claims.Subject,
			Phone:      claims.Phone,
		}, nil
	}

	return nil, ErrInvalidToken
}
