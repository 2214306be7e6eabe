package services

import (
	"context"

	"github.com/duka-app/duka_backend/internal/core/domain"
	"github.com/duka-app/duka_backend/internal/dto"
)

// BusinessSvcFacade manages business accounts and their credentials.
type BusinessSvcFacade interface {
	// RegisterBusiness creates a business account, hashing the password.
	RegisterBusiness(ctx context.Context, req dto.CreateBusinessRequest) (*domain.Business, error)

	GetBusiness(ctx context.Context, businessID string) (*domain.Business, error)
	UpdateBusiness(ctx context.Context, businessID string, req dto.UpdateBusinessRequest) (*domain.Business, error)
	DeleteBusiness(ctx context.Context, businessID string) (*domain.Business, error)

	// Authenticate verifies phone+password and returns the matching business.
	Authenticate(ctx context.Context, phone, password string) (*domain.Business, error)
}
