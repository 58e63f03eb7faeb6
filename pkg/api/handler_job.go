package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/pkg/services"
)

// CreateJobRequest is the body of POST /targets/:id/jobs/.
type CreateJobRequest struct {
	APIName                string         `json:"api_name" binding:"required"`
	Parameters             map[string]any `json:"parameters"`
	APIDefinitionVersionID string         `json:"api_definition_version_id"`
}

// createJobHandler handles POST /targets/:id/jobs/.
func (s *Server) createJobHandler(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	j, err := runtime(c).Jobs.Enqueue(c.Request.Context(), services.CreateJobRequest{
		TargetID:               c.Param("id"),
		APIName:                req.APIName,
		APIDefinitionVersionID: req.APIDefinitionVersionID,
		Parameters:             req.Parameters,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newJobResponse(j))
}

// loadJob resolves the path job and verifies it belongs to the path target.
func (s *Server) loadJob(c *gin.Context) (*ent.Job, bool) {
	j, err := runtime(c).Jobs.Get(c.Request.Context(), c.Param("job"))
	if err != nil {
		respondServiceError(c, err)
		return nil, false
	}
	if j.TargetID != c.Param("id") {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return nil, false
	}
	return j, true
}

// getJobHandler handles GET /targets/:id/jobs/:job.
func (s *Server) getJobHandler(c *gin.Context) {
	j, ok := s.loadJob(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newJobResponse(j))
}

// jobLogsHandler handles GET /targets/:id/jobs/:job/logs. Only the trimmed
// content is exposed; full payloads stay in the database.
func (s *Server) jobLogsHandler(c *gin.Context) {
	j, ok := s.loadJob(c)
	if !ok {
		return
	}

	logs, err := runtime(c).Logs.ForJob(c.Request.Context(), j.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]JobLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, JobLogResponse{
			ID:        l.ID,
			LogType:   string(l.LogType),
			Timestamp: l.Timestamp,
			Content:   l.ContentTrimmed,
		})
	}
	c.JSON(http.StatusOK, out)
}

// interruptJobHandler handles POST /targets/:id/jobs/:job/interrupt. The
// running worker observes the flag at its next loop boundary.
func (s *Server) interruptJobHandler(c *gin.Context) {
	j, ok := s.loadJob(c)
	if !ok {
		return
	}
	if err := runtime(c).Jobs.RequestCancel(c.Request.Context(), j.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "cancellation requested"})
}

// cancelJobHandler handles POST /targets/:id/jobs/:job/cancel. Only jobs
// that have not started can be canceled directly.
func (s *Server) cancelJobHandler(c *gin.Context) {
	j, ok := s.loadJob(c)
	if !ok {
		return
	}
	canceled, err := runtime(c).Jobs.Cancel(c.Request.Context(), j.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newJobResponse(canceled))
}

// resumeJobHandler handles POST /targets/:id/jobs/:job/resume.
func (s *Server) resumeJobHandler(c *gin.Context) {
	j, ok := s.loadJob(c)
	if !ok {
		return
	}
	resumed, err := runtime(c).Jobs.Resume(c.Request.Context(), j.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newJobResponse(resumed))
}

// resolveJobHandler handles POST /targets/:id/jobs/:job/resolve: an operator
// supplies the result a blocked job could not produce, unblocking the queue.
func (s *Server) resolveJobHandler(c *gin.Context) {
	j, ok := s.loadJob(c)
	if !ok {
		return
	}

	var result map[string]any
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolved, err := runtime(c).Jobs.Resolve(c.Request.Context(), j.ID, result)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newJobResponse(resolved))
}
