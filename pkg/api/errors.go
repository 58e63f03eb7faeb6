package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legacyuse/orchestrator/pkg/services"
	"github.com/legacyuse/orchestrator/pkg/tenancy"
)

// respondServiceError maps service-layer errors to HTTP error responses.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, services.ErrNotCancelable):
		c.JSON(http.StatusConflict, gin.H{"error": "job is not in a cancelable state"})
	case errors.Is(err, services.ErrNotResumable):
		c.JSON(http.StatusConflict, gin.H{"error": "job is not in a resumable state"})
	case errors.Is(err, services.ErrTerminal):
		c.JSON(http.StatusConflict, gin.H{"error": "job is in a terminal state"})
	case errors.Is(err, tenancy.ErrUnknownTenant):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tenant"})
	case errors.Is(err, tenancy.ErrTenantInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": "tenant is inactive"})
	default:
		slog.Error("Unexpected service error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
