package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	portssvc "github.com/agentdms/agentdms-backend/internal/core/ports/services"
	"github.com/agentdms/agentdms-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer
// tokens and stores the embedded claims in the request context. The token is
// the complete authorization context; no server-side session lookup happens
// here.
func AuthMiddleware(tokenService portssvc.TokenSvcFacade) gin.HandlerFunc {
	return AuthMiddlewareWithFallback(tokenService, nil)
}

// AuthMiddlewareWithFallback behaves like AuthMiddleware but, when an
// anonymous identity provider is supplied, serves its fixed claims to
// requests that arrive without an Authorization header. Requests that do
// present a token are always fully validated; the fallback never papers over
// a bad credential.
func AuthMiddlewareWithFallback(tokenService portssvc.TokenSvcFacade, anonymous portssvc.AnonymousIdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if anonymous != nil {
				installClaims(c, anonymous.AnonymousClaims(), logger)
				c.Next()
				return
			}
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := tokenService.ValidateToken(parts[1])
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				msg = "Token has expired"
			}
			logger.Warn("Token validation failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		installClaims(c, claims, logger)
		c.Next()
	}
}

// installClaims stores the claims in the request context and enriches the
// logger with the caller's identity.
func installClaims(c *gin.Context, claims *dto.Claims, logger *slog.Logger) {
	ctxWithClaims := context.WithValue(c.Request.Context(), claimsKey, claims)
	enrichedLogger := logger.With(slog.String("user_id", claims.UserID))
	ctxWithLogger := context.WithValue(ctxWithClaims, loggerCtxKey, enrichedLogger)
	c.Request = c.Request.WithContext(ctxWithLogger)
}

// RequirePermission creates a Gin middleware that rejects callers whose token
// does not carry the given permission. It must run after AuthMiddleware.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		claims, ok := GetClaimsFromContext(c)
		if !ok {
			logger.Error("Permission check without authenticated claims", slog.String("permission", permission))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if !claims.HasPermission(permission) {
			logger.Warn("Insufficient permissions",
				slog.String("user_id", claims.UserID),
				slog.String("required_permission", permission))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied. Insufficient permissions."})
			return
		}

		c.Next()
	}
}
