package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legacyuse/orchestrator/pkg/services"
)

// createTargetHandler handles POST /targets/.
func (s *Server) createTargetHandler(c *gin.Context) {
	var req services.CreateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := runtime(c).Targets.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// listTargetsHandler handles GET /targets/.
func (s *Server) listTargetsHandler(c *gin.Context) {
	targets, err := runtime(c).Targets.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, targets)
}

// getTargetHandler handles GET /targets/:id. The response includes whether
// the target's queue is paused by a blocking job.
func (s *Server) getTargetHandler(c *gin.Context) {
	rt := runtime(c)
	t, err := rt.Targets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	paused, err := rt.Jobs.IsTargetQueuePaused(c.Request.Context(), t.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, TargetResponse{Target: t, QueuePaused: paused})
}

// archiveTargetHandler handles DELETE /targets/:id.
func (s *Server) archiveTargetHandler(c *gin.Context) {
	if err := runtime(c).Targets.Archive(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
