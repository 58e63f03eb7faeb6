package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/legacyuse/orchestrator/pkg/database"
	"github.com/legacyuse/orchestrator/pkg/version"
)

// healthHandler handles GET /health. Unauthenticated; load balancers and
// probes depend on it.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.control.DB())
	status := http.StatusOK
	resp := HealthResponse{
		Status:   "healthy",
		Version:  version.Full(),
		Database: dbHealth,
	}
	if err != nil {
		status = http.StatusServiceUnavailable
		resp.Status = "unhealthy"
	}
	c.JSON(status, resp)
}

// queueDiagnosticsHandler handles GET /diagnostics/queue.
func (s *Server) queueDiagnosticsHandler(c *gin.Context) {
	snapshot, err := runtime(c).Jobs.Snapshot(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
