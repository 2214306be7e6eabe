package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// BusinessClaims are the claims carried by every token issued to a business.
// KeyVersion records which signing key version produced the token.
type BusinessClaims struct {
	Phone      string `json:"phone,omitempty"`
	KeyVersion int    `json:"kv"`
	jwt.RegisteredClaims
}

// GenerateJWT signs a token for a business with the given HMAC secret.
func GenerateJWT(businessID, phone, secret string, keyVersion int, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := BusinessClaims{
		Phone:      phone,
		KeyVersion: keyVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   businessID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a token string and validates its signature and
// standard claims against one HMAC secret.
func ParseAndValidateJWT(tokenString string, secretKey string) (*BusinessClaims, error) {
	claims := &BusinessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
