// Orchestrator server — exposes the HTTP API, runs the per-tenant job
// processors, and competes for the maintenance leader lock.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/legacyuse/orchestrator/ent"
	"github.com/legacyuse/orchestrator/pkg/agent"
	"github.com/legacyuse/orchestrator/pkg/api"
	"github.com/legacyuse/orchestrator/pkg/config"
	"github.com/legacyuse/orchestrator/pkg/database"
	"github.com/legacyuse/orchestrator/pkg/maintenance"
	"github.com/legacyuse/orchestrator/pkg/provider"
	"github.com/legacyuse/orchestrator/pkg/queue"
	"github.com/legacyuse/orchestrator/pkg/sandbox"
	"github.com/legacyuse/orchestrator/pkg/services"
	"github.com/legacyuse/orchestrator/pkg/sessions"
	"github.com/legacyuse/orchestrator/pkg/tenancy"
	"github.com/legacyuse/orchestrator/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// runtimeSet builds and caches one api.Runtime per tenant schema. The API
// server resolves runtimes lazily, so tenants activated after startup get
// request handling without a restart (their worker pool starts on the next
// process restart).
type runtimeSet struct {
	registry *tenancy.Registry
	sandbox  sandbox.Manager

	mu       sync.Mutex
	runtimes map[string]*api.Runtime
}

func (r *runtimeSet) RuntimeFor(ctx context.Context, tenant *ent.Tenant) (*api.Runtime, error) {
	r.mu.Lock()
	if rt, ok := r.runtimes[tenant.Schema]; ok {
		r.mu.Unlock()
		return rt, nil
	}
	r.mu.Unlock()

	client, err := r.registry.ClientFor(ctx, tenant.Schema)
	if err != nil {
		return nil, err
	}

	logs := services.NewLogService(client)
	rt := &api.Runtime{
		Tenant:   tenant,
		Jobs:     services.NewJobService(client, logs),
		Messages: services.NewMessageService(client),
		Targets:  services.NewTargetService(client),
		Sessions: services.NewSessionService(client),
		APIs:     services.NewAPIService(client),
		Logs:     logs,
		Settings: services.NewSettingsService(client),
		Sandbox:  r.sandbox,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.runtimes[tenant.Schema]; ok {
		return existing, nil
	}
	r.runtimes[tenant.Schema] = rt
	return rt, nil
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	apiKey := os.Getenv("ORCHESTRATOR_API_KEY")

	slog.Info("Starting orchestrator",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	cfg, err := config.Load(*configDir)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	control, err := database.NewControlClient(ctx, dbCfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := control.Close(); err != nil {
			slog.Error("Error closing control client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL, control migrations applied")

	registry := tenancy.NewRegistry(control, dbCfg)
	defer func() {
		if err := registry.Close(); err != nil {
			slog.Error("Error closing tenant clients", "error", err)
		}
	}()

	manager, err := sandbox.NewDockerManager(cfg.Sandbox)
	if err != nil {
		slog.Error("Failed to create container manager", "error", err)
		os.Exit(1)
	}

	runtimes := &runtimeSet{
		registry: registry,
		sandbox:  manager,
		runtimes: make(map[string]*api.Runtime),
	}

	tenants, err := registry.ListActive(ctx)
	if err != nil {
		slog.Error("Failed to list tenants", "error", err)
		os.Exit(1)
	}
	slog.Info("Discovered tenants", "count", len(tenants))

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	newFacade := func(ip string) *sandbox.FacadeClient {
		return sandbox.NewFacadeClient(ip, cfg.Sandbox.HealthPort, cfg.Loop.ToolTimeout, cfg.Loop.HealthCheckTimeout)
	}

	var wg sync.WaitGroup
	var maintTenants []maintenance.Tenant
	for _, tenant := range tenants {
		rt, err := runtimes.RuntimeFor(ctx, tenant)
		if err != nil {
			slog.Error("Failed to build tenant runtime", "tenant", tenant.ID, "error", err)
			os.Exit(1)
		}

		handler, err := provider.New(cfg.Loop.Provider, rt.Settings)
		if err != nil {
			slog.Error("Failed to build provider handler", "provider", cfg.Loop.Provider, "error", err)
			os.Exit(1)
		}

		loop := agent.New(cfg.Loop, agent.Deps{
			Jobs:      rt.Jobs,
			Messages:  rt.Messages,
			Logs:      rt.Logs,
			Versions:  rt.APIs,
			Sessions:  rt.Sessions,
			Targets:   rt.Targets,
			Handler:   handler,
			Settings:  rt.Settings,
			NewFacade: func(ip string) agent.Facade { return newFacade(ip) },
		})

		pool := queue.NewWorkerPool(cfg.Queue, tenant.Schema, rt.Jobs, loop)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pool.Run(runCtx)
		}()

		monitor := sessions.NewMonitor(cfg.Sessions, rt.Sessions, manager,
			func(ip string) sessions.HealthProber { return newFacade(ip) })
		provisioner := sessions.NewProvisioner(cfg.Sandbox, manager, rt.Sessions, rt.Targets, rt.Jobs)

		maintTenants = append(maintTenants, maintenance.Tenant{
			Schema:      tenant.Schema,
			Jobs:        rt.Jobs,
			Logs:        rt.Logs,
			Provisioner: provisioner,
			Sessions:    monitor,
		})
	}

	leader := maintenance.NewLeader(cfg, control.DB(), maintTenants)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = leader.Run(runCtx)
	}()

	server := api.NewServer(apiKey, registry, runtimes, control)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Orchestrator started",
		"tenants", len(tenants),
		"workers_per_tenant", cfg.Queue.WorkerCount)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("HTTP server error triggered shutdown", "error", err)
	}

	// Stop claiming and let running jobs wind down; anything still running
	// past the budget is finished by the lease reaper of the next leader.
	cancelRun()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pools stopped gracefully")
	case <-time.After(cfg.Queue.GracefulShutdownTimeout):
		slog.Warn("Shutdown timeout exceeded, leases will expire for unfinished jobs")
	}

	httpCtx, cancelHTTP := context.WithTimeout(ctx, 5*time.Second)
	defer cancelHTTP()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
