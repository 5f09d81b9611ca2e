package handlers

import (
	"errors"
	"net/http"

	"github.com/agentdms/agentdms-backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps service-layer sentinel errors onto HTTP status codes with
// a uniform {"error": ...} body. Anything unrecognized becomes a 500 with a
// generic message so internals never leak to clients.
func respondError(c *gin.Context, err error, fallbackMessage string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "Resource already exists"})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Insufficient permissions."})
	case errors.Is(err, apperrors.ErrImmutableUser):
		c.JSON(http.StatusForbidden, gin.H{"error": "This user cannot be modified"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage})
	}
}
