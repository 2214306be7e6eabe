package dto

import (
	"time"

	"github.com/duka-app/duka_backend/internal/core/domain"
)

// CreateCustomerRequest defines the input for creating a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required,phone"`
	Role  string `json:"role" binding:"required,oneof=customer vendor"`
}

// UpdateCustomerPhoneRequest updates only the phone number.
type UpdateCustomerPhoneRequest struct {
	Phone string `json:"phone" binding:"required,phone"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID  string    `json:"customerID"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	SavedOrders []string  `json:"savedOrders,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:  c.CustomerID,
		Name:        c.Name,
		Phone:       c.Phone,
		Role:        string(c.Role),
		SavedOrders: c.SavedOrders,
		CreatedAt:   c.CreatedAt,
	}
}
