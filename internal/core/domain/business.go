package domain

// Business is a tenant of the back-office. Login is by phone number.
type Business struct {
	BusinessID   string `json:"businessID"`
	Name         string `json:"name"`
	Industry     string `json:"industry,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone"` // unique
	Email        string `json:"email,omitempty"`
	PasswordHash string `json:"-"`
	Timestamps
}
