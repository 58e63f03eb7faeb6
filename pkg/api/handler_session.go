package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legacyuse/orchestrator/ent/session"
)

// listSessionsHandler handles GET /sessions/.
func (s *Server) listSessionsHandler(c *gin.Context) {
	sessions, err := runtime(c).Sessions.ListActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// archiveSessionHandler handles POST /sessions/:id/archive. Stops and
// removes the session's container; archived sessions leave the monitor's
// active set, so cleanup cannot be deferred to it.
func (s *Server) archiveSessionHandler(c *gin.Context) {
	rt := runtime(c)
	ctx := c.Request.Context()

	sess, err := rt.Sessions.Get(ctx, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if err := rt.Sessions.Archive(ctx, sess.ID, session.ArchiveReasonUserInitiated); err != nil {
		respondServiceError(c, err)
		return
	}

	if rt.Sandbox != nil && sess.ContainerID != nil && *sess.ContainerID != "" {
		if err := rt.Sandbox.Stop(ctx, *sess.ContainerID); err != nil {
			slog.Warn("Stopping archived session container failed", "session_id", sess.ID, "error", err)
		}
		if err := rt.Sandbox.Remove(ctx, *sess.ContainerID); err != nil {
			slog.Warn("Removing archived session container failed", "session_id", sess.ID, "error", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "session archived"})
}
