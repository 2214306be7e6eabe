package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Test case 1: Standard timestamp and ID
	timestamp := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)
	id := "9b3a7a1e-0e5e-4d69-8a2e-0c4f7a3d1b22"

	token := EncodeToken(timestamp, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedTimestamp, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, timestamp, decodedTimestamp, "Timestamp should match after decode")
	assert.Equal(t, id, decodedID, "ID should match after decode")

	// Test case 2: Current time
	now := time.Now().UTC()
	nowToken := EncodeToken(now, "some-id")
	decodedNow, decodedNowID, err := DecodeToken(nowToken)
	assert.NoError(t, err, "Decoding current time should not return an error")
	assert.True(t, now.Equal(decodedNow), "Current time should match after decode")
	assert.Equal(t, "some-id", decodedNowID, "ID should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Test invalid base64
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test invalid format (missing separator)
	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo=" // Base64 encoded timestamp without separator
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for invalid token format")
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Test invalid timestamp
	invalidTimestampToken := "bm90YWRhdGV8c29tZS1pZA==" // Base64 encoded "notadate|some-id"
	_, _, err = DecodeToken(invalidTimestampToken)
	assert.Error(t, err, "Should return an error for invalid timestamp format")
	assert.Contains(t, err.Error(), "timestamp parse", "Error should mention timestamp parsing issue")

	// Test empty ID component
	emptyIDToken := EncodeToken(time.Now().UTC(), "")
	_, _, err = DecodeToken(emptyIDToken)
	assert.Error(t, err, "Should return an error for an empty ID component")
	assert.Contains(t, err.Error(), "empty id", "Error should mention the empty id")
}
