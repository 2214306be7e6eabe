package models

// Customer maps the customers table. saved_orders is a text[] of order IDs.
type Customer struct {
	CustomerID  string   `db:"customer_id"`
	Name        string   `db:"name"`
	Phone       string   `db:"phone"`
	Role        string   `db:"role"`
	SavedOrders []string `db:"saved_orders"`
	Timestamps
}
