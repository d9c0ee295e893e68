package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medzone/storefront/pkg/errors"
)

// respondError maps the typed errors onto HTTP statuses. Validation failures
// and illegal transitions are the visitor's to fix; backend failures are
// transient and retryable.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrValidation:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"field":   e.Field,
			"details": e.Error(),
		})
	case *errors.ErrLineIndex:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrInvalidStateTransition:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error()})
	case *errors.ErrBackend:
		logger.Warn("Backend request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend unavailable, please retry"})
	default:
		logger.Error("Unexpected error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
