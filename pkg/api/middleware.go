package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// runtimeKey is the gin context key holding the request's tenant Runtime.
const runtimeKey = "tenant-runtime"

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// requireAPIKey rejects requests without the shared X-API-Key credential.
func (s *Server) requireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.apiKey == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "api key is not configured"})
			return
		}
		got := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
			return
		}
		c.Next()
	}
}

// resolveTenant maps the request Host to its tenant and stashes the tenant's
// Runtime on the context.
func (s *Server) resolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, err := s.resolver.ResolveHost(c.Request.Context(), c.Request.Host)
		if err != nil {
			respondServiceError(c, err)
			c.Abort()
			return
		}
		rt, err := s.runtimes.RuntimeFor(c.Request.Context(), tenant)
		if err != nil {
			respondServiceError(c, err)
			c.Abort()
			return
		}
		c.Set(runtimeKey, rt)
		c.Next()
	}
}

// runtime returns the request's tenant Runtime set by resolveTenant.
func runtime(c *gin.Context) *Runtime {
	return c.MustGet(runtimeKey).(*Runtime)
}
