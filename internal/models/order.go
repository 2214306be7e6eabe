package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Order maps the orders table.
type Order struct {
	OrderID     string          `db:"order_id"`
	Name        string          `db:"name"`
	Description sql.NullString  `db:"description"`
	Category    sql.NullString  `db:"category"`
	Price       decimal.Decimal `db:"price"`
	Quantity    int64           `db:"quantity"`
	CustomerID  string          `db:"customer_id"`
	Timestamps
}
