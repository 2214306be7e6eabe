package dto

import (
	"time"

	"github.com/duka-app/duka_backend/internal/core/domain"
)

// CreateBusinessRequest defines the input for registering a business.
type CreateBusinessRequest struct {
	Name     string `json:"name" binding:"required"`
	Industry string `json:"industry"`
	Address  string `json:"address"`
	Phone    string `json:"phone" binding:"required,phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateBusinessRequest is the statically defined set of updatable business fields.
type UpdateBusinessRequest struct {
	Name     *string `json:"name"`
	Industry *string `json:"industry"`
	Address  *string `json:"address"`
	Email    *string `json:"email"`
}

// BusinessResponse defines the data returned for a business.
type BusinessResponse struct {
	BusinessID string    `json:"businessID"`
	Name       string    `json:"name"`
	Industry   string    `json:"industry,omitempty"`
	Address    string    `json:"address,omitempty"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToBusinessResponse converts a domain.Business to BusinessResponse DTO.
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID: b.BusinessID,
		Name:       b.Name,
		Industry:   b.Industry,
		Address:    b.Address,
		Phone:      b.Phone,
		Email:      b.Email,
		CreatedAt:  b.CreatedAt,
	}
}
