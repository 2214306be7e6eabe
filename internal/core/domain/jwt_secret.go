package domain

import "time"

// JwtSecret is one version of the HMAC signing key. The highest version is the
// current key; the previous version stays valid for tokens issued before rotation.
type JwtSecret struct {
	SecretID  string    `json:"-"`
	Key       string    `json:"-"` // hex-encoded 256-bit secret
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
}
