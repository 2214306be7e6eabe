package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/duka-app/duka_backend/internal/apperrors"
	"github.com/duka-app/duka_backend/internal/core/domain"
	portsrepo "github.com/duka-app/duka_backend/internal/core/ports/repositories"
	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
	"github.com/duka-app/duka_backend/internal/dto"
	"github.com/duka-app/duka_backend/internal/middleware"
	"github.com/duka-app/duka_backend/internal/utils"
)

var (
	ErrBusinessNotFound   = errors.New("business not found")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
)

// businessService provides business account management and credential checks.
type businessService struct {
	businessRepo portsrepo.BusinessRepository
}

// NewBusinessService creates a new BusinessService.
func NewBusinessService(businessRepo portsrepo.BusinessRepository) portssvc.BusinessSvcFacade {
	return &businessService{businessRepo: businessRepo}
}

// Ensure businessService implements the portssvc.BusinessSvcFacade interface
var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

// RegisterBusiness creates a business account with a hashed password.
// Implements portssvc.BusinessSvcFacade
func (s *businessService) RegisterBusiness(ctx context.Context, req dto.CreateBusinessRequest) (*domain.Business, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	business := domain.Business{
		BusinessID:   uuid.NewString(),
		Name:         req.Name,
		Industry:     req.Industry,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: hash,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.businessRepo.SaveBusiness(ctx, business); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a business with phone %s already exists", apperrors.ErrDuplicate, req.Phone)
		}
		logger.Error("Failed to save business", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save business: %w", err)
	}

	logger.Info("Business registered", slog.String("business_id", business.BusinessID))
	return &business, nil
}

// GetBusiness retrieves one business by ID.
// Implements portssvc.BusinessSvcFacade
func (s *businessService) GetBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrBusinessNotFound, businessID)
		}
		return nil, fmt.Errorf("failed to find business %s: %w", businessID, err)
	}
	return business, nil
}

// UpdateBusiness applies the provided fields to an existing business.
// Implements portssvc.BusinessSvcFacade
func (s *businessService) UpdateBusiness(ctx context.Context, businessID string, req dto.UpdateBusinessRequest) (*domain.Business, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrBusinessNotFound, businessID)
		}
		logger.Error("Failed to find business for update", slog.String("error", err.Error()), slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to find business %s: %w", businessID, err)
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Industry != nil {
		business.Industry = *req.Industry
	}
	if req.Address != nil {
		business.Address = *req.Address
	}
	if req.Email != nil {
		business.Email = *req.Email
	}
	business.UpdatedAt = time.Now().UTC()

	if err := s.businessRepo.UpdateBusiness(ctx, *business); err != nil {
		logger.Error("Failed to update business", slog.String("error", err.Error()), slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to update business %s: %w", businessID, err)
	}

	logger.Info("Business updated", slog.String("business_id", businessID))
	return business, nil
}

// DeleteBusiness removes a business and returns the deleted record.
// Implements portssvc.BusinessSvcFacade
func (s *businessService) DeleteBusiness(ctx context.Context, businessID string) (*domain.Business, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	deleted, err := s.businessRepo.DeleteBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrBusinessNotFound, businessID)
		}
		logger.Error("Failed to delete business", slog.String("error", err.Error()), slog.String("business_id", businessID))
		return nil, fmt.Errorf("failed to delete business %s: %w", businessID, err)
	}

	logger.Info("Business deleted", slog.String("business_id", businessID))
	return deleted, nil
}

// Authenticate verifies the phone and password of a business. It returns the
// same error for an unknown phone and a wrong password so callers cannot
// probe for registered numbers.
// Implements portssvc.BusinessSvcFacade
func (s *businessService) Authenticate(ctx context.Context, phone, password string) (*domain.Business, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	business, err := s.businessRepo.FindBusinessByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		logger.Error("Failed to find business for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to find business by phone: %w", err)
	}

	if !utils.CheckPasswordHash(password, business.PasswordHash) {
		logger.Warn("Login failed: wrong password", slog.String("business_id", business.BusinessID))
		return nil, ErrInvalidCredentials
	}

	return business, nil
}
