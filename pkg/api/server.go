// Package api exposes the orchestrator's HTTP surface: job lifecycle
// operations, target and session management, API definition versioning, and
// diagnostics. Every request authenticates with X-API-Key and is scoped to
// the tenant resolved from its Host header.
package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/pkg/database"
	"github.com/legacyuse/orchestrator/pkg/sandbox"
	"github.com/legacyuse/orchestrator/pkg/services"
)

// Runtime bundles one tenant's schema-scoped services for request handling.
type Runtime struct {
	Tenant   *ent.Tenant
	Jobs     *services.JobService
	Messages *services.MessageService
	Targets  *services.TargetService
	Sessions *services.SessionService
	APIs     *services.APIService
	Logs     *services.LogService
	Settings *services.SettingsService
	Sandbox  sandbox.Manager
}

// TenantResolver maps a request Host to a tenant. Implemented by
// tenancy.Registry.
type TenantResolver interface {
	ResolveHost(ctx context.Context, host string) (*ent.Tenant, error)
}

// RuntimeProvider returns the service bundle for a resolved tenant.
type RuntimeProvider interface {
	RuntimeFor(ctx context.Context, tenant *ent.Tenant) (*Runtime, error)
}

// Server is the HTTP API server.
type Server struct {
	apiKey   string
	resolver TenantResolver
	runtimes RuntimeProvider
	control  *database.Client
}

// NewServer creates an API server. apiKey is the shared inbound credential;
// control is the control-schema client used by the health endpoint.
func NewServer(apiKey string, resolver TenantResolver, runtimes RuntimeProvider, control *database.Client) *Server {
	return &Server{
		apiKey:   apiKey,
		resolver: resolver,
		runtimes: runtimes,
		control:  control,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1", s.requireAPIKey(), s.resolveTenant())

	v1.POST("/targets/", s.createTargetHandler)
	v1.GET("/targets/", s.listTargetsHandler)
	v1.GET("/targets/:id", s.getTargetHandler)
	v1.DELETE("/targets/:id", s.archiveTargetHandler)

	v1.POST("/targets/:id/jobs/", s.createJobHandler)
	v1.GET("/targets/:id/jobs/:job", s.getJobHandler)
	v1.GET("/targets/:id/jobs/:job/logs", s.jobLogsHandler)
	v1.POST("/targets/:id/jobs/:job/interrupt", s.interruptJobHandler)
	v1.POST("/targets/:id/jobs/:job/cancel", s.cancelJobHandler)
	v1.POST("/targets/:id/jobs/:job/resume", s.resumeJobHandler)
	v1.POST("/targets/:id/jobs/:job/resolve", s.resolveJobHandler)

	v1.GET("/sessions/", s.listSessionsHandler)
	v1.POST("/sessions/:id/archive", s.archiveSessionHandler)

	v1.GET("/apis/", s.listAPIsHandler)
	v1.POST("/apis/", s.createAPIHandler)
	v1.GET("/apis/:id/versions/", s.listVersionsHandler)
	v1.POST("/apis/:id/versions/", s.createVersionHandler)
	v1.POST("/versions/:id/activate", s.activateVersionHandler)

	v1.PUT("/settings/", s.putSettingHandler)

	v1.GET("/diagnostics/queue", s.queueDiagnosticsHandler)

	return r
}
