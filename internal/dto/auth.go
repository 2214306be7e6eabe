package dto

// LoginRequest authenticates a business by phone number and password.
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required,phone"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed JWT.
type LoginResponse struct {
	Token      string `json:"token"`
	BusinessID string `json:"businessID"`
}
