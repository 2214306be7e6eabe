package domain

import "github.com/shopspring/decimal"

// Order is a purchasable line item tied to a customer.
// Its price and quantity are the canonical basis for the amount of the
// single financial transaction derived from it.
type Order struct {
	OrderID     string          `json:"orderID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`    // non-negative
	Quantity    int64           `json:"quantity"` // non-negative
	CustomerID  string          `json:"customerID"`
	Timestamps
}

// DerivedAmount returns price * quantity, the amount the paired
// transaction must carry.
func (o Order) DerivedAmount() decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(o.Quantity))
}
