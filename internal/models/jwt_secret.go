package models

import "time"

// JwtSecret maps the jwt_secrets table.
type JwtSecret struct {
	SecretID  string    `db:"secret_id"`
	Key       string    `db:"key"`
	Version   int       `db:"version"`
	CreatedAt time.Time `db:"created_at"`
}
