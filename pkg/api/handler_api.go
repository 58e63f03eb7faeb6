package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/legacyuse/orchestrator/pkg/models"
	"github.com/legacyuse/orchestrator/pkg/services"
)

// CreateAPIRequest is the body of POST /apis/.
type CreateAPIRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// createAPIHandler handles POST /apis/.
func (s *Server) createAPIHandler(c *gin.Context) {
	var req CreateAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	def, err := runtime(c).APIs.CreateDefinition(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, def)
}

// listAPIsHandler handles GET /apis/.
func (s *Server) listAPIsHandler(c *gin.Context) {
	defs, err := runtime(c).APIs.ListDefinitions(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, defs)
}

// CreateVersionRequest is the body of POST /apis/:id/versions/.
type CreateVersionRequest struct {
	Parameters      []models.APIParameter `json:"parameters"`
	Prompt          string                `json:"prompt" binding:"required"`
	PromptCleanup   string                `json:"prompt_cleanup"`
	ResponseExample map[string]any        `json:"response_example"`
	Activate        bool                  `json:"activate"`
}

// createVersionHandler handles POST /apis/:id/versions/.
func (s *Server) createVersionHandler(c *gin.Context) {
	var req CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := runtime(c).APIs.CreateVersion(c.Request.Context(), services.CreateVersionRequest{
		APIDefinitionID: c.Param("id"),
		Parameters:      req.Parameters,
		Prompt:          req.Prompt,
		PromptCleanup:   req.PromptCleanup,
		ResponseExample: req.ResponseExample,
		Activate:        req.Activate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// listVersionsHandler handles GET /apis/:id/versions/.
func (s *Server) listVersionsHandler(c *gin.Context) {
	versions, err := runtime(c).APIs.ListVersions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, versions)
}

// activateVersionHandler handles POST /versions/:id/activate.
func (s *Server) activateVersionHandler(c *gin.Context) {
	if err := runtime(c).APIs.ActivateVersion(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "version activated"})
}

// PutSettingRequest is the body of PUT /settings/.
type PutSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// putSettingHandler handles PUT /settings/. Values are write-only; secrets
// never come back out through the API.
func (s *Server) putSettingHandler(c *gin.Context) {
	var req PutSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := runtime(c).Settings.Set(c.Request.Context(), req.Key, req.Value); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "setting updated"})
}
