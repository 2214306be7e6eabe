package models

import "database/sql"

// Business maps the businesses table.
type Business struct {
	BusinessID   string         `db:"business_id"`
	Name         string         `db:"name"`
	Industry     sql.NullString `db:"industry"`
	Address      sql.NullString `db:"address"`
	Phone        string         `db:"phone"`
	Email        sql.NullString `db:"email"`
	PasswordHash string         `db:"password_hash"`
	Timestamps
}
