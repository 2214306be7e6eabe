package domain

import "time"

// Timestamps holds the standard creation/update instants carried by every entity.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
