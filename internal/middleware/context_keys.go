package middleware

import "github.com/gin-gonic/gin"

// businessIDKey is the key used to store the authenticated business's ID in
// the request context.
const businessIDKey = contextKey("businessID")

// GetBusinessIDFromContext retrieves the authenticated business ID from the
// Gin context. It returns the ID and a boolean indicating if it was found.
func GetBusinessIDFromContext(c *gin.Context) (string, bool) {
	businessIDVal := c.Request.Context().Value(businessIDKey)
	if businessIDVal == nil {
		return "", false
	}

	businessID, ok := businessIDVal.(string)
	if !ok {
		return "", false
	}

	return businessID, true
}
