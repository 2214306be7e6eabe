package repositories

import (
	"context"

	"github.com/duka-app/duka_backend/internal/core/domain"
)

// BusinessRepository defines persistence operations for businesses.
type BusinessRepository interface {
	SaveBusiness(ctx context.Context, business domain.Business) error
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)
	FindBusinessByPhone(ctx context.Context, phone string) (*domain.Business, error)
	UpdateBusiness(ctx context.Context, business domain.Business) error
	DeleteBusiness(ctx context.Context, businessID string) (*domain.Business, error)
}
