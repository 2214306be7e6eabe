package domain

// CustomerRole distinguishes buyers from suppliers.
type CustomerRole string

const (
	RoleCustomer CustomerRole = "customer"
	RoleVendor   CustomerRole = "vendor"
)

// Customer is a person the business trades with, keyed by a unique phone number.
type Customer struct {
	CustomerID  string       `json:"customerID"`
	Name        string       `json:"name"`
	Phone       string       `json:"phone"` // unique
	Role        CustomerRole `json:"role"`
	SavedOrders []string     `json:"savedOrders,omitempty"` // Order ID references
	Timestamps
}
