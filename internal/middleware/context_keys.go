package middleware

import (
	"github.com/agentdms/agentdms-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// contextKey is a private type for context keys defined by this package.
// Using a custom type prevents collisions.
type contextKey string

const (
	// loggerCtxKey stores the request-scoped logger in the request context.
	loggerCtxKey = contextKey("logger")
	// claimsKey stores the validated token claims in the request context.
	claimsKey = contextKey("claims")
)

// GetClaimsFromContext retrieves the validated token claims from the Gin
// context. It returns the claims and a boolean indicating if they were found.
func GetClaimsFromContext(c *gin.Context) (*dto.Claims, bool) {
	claimsVal := c.Request.Context().Value(claimsKey)
	if claimsVal == nil {
		return nil, false
	}
	claims, ok := claimsVal.(*dto.Claims)
	if !ok {
		return nil, false
	}
	return claims, true
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	claims, ok := GetClaimsFromContext(c)
	if !ok || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}
