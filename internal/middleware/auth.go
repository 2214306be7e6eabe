package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/duka-app/duka_backend/internal/core/ports/services"
)

// AuthMiddleware creates a Gin middleware handler that validates Bearer
// tokens against the rotating signing keys held by the keyring.
func AuthMiddleware(keyring portssvc.KeyringSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := keyring.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if claims.BusinessID == "" {
			logger.Error("Business ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		// Store the business ID in the request context
		ctxWithBusiness := context.WithValue(c.Request.Context(), businessIDKey, claims.BusinessID)

		// Store an enriched logger back into the request context
		enrichedLogger := logger.With(slog.String("business_id", claims.BusinessID))
		ctxWithLoggerAndBusiness := context.WithValue(ctxWithBusiness, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctxWithLoggerAndBusiness)

		c.Next()
	}
}
