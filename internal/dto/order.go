package dto

import (
	"time"

	"github.com/duka-app/duka_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the input for creating an order. The customer is
// resolved (or created) by phone; customerID is accepted as a direct reference.
type CreateOrderRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	Quantity      int64           `json:"quantity" binding:"min=0"`
	Category      string          `json:"category"`
	CustomerPhone string          `json:"customerPhone" binding:"required,phone"`
	CustomerID    string          `json:"customerID"`
}

// UpdateOrderRequest is the statically defined set of updatable order fields.
// Pointers distinguish omitted fields from zero values; anything not listed
// here cannot be updated.
type UpdateOrderRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int64           `json:"quantity"`
	Category    *string          `json:"category"`
}

// TouchesAmount reports whether the update changes price or quantity and
// therefore requires the paired transaction amount to be recomputed.
func (r UpdateOrderRequest) TouchesAmount() bool {
	return r.Price != nil || r.Quantity != nil
}

// OrdersByUserQuery selects orders by customer, by direct ID or by phone.
type OrdersByUserQuery struct {
	Phone      string `json:"phone" form:"phone"`
	CustomerID string `json:"customerID" form:"customerID"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID     string          `json:"orderID"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	CustomerID  string          `json:"customerID"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListOrdersResponse wraps a list of orders.
type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:     o.OrderID,
		Name:        o.Name,
		Description: o.Description,
		Category:    o.Category,
		Price:       o.Price,
		Quantity:    o.Quantity,
		CustomerID:  o.CustomerID,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// ToListOrdersResponse converts a slice of domain.Order to ListOrdersResponse.
func ToListOrdersResponse(orders []domain.Order) ListOrdersResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return ListOrdersResponse{Orders: responses}
}
