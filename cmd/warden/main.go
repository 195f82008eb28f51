// Warden orchestrator server: HTTP API, supervisor loop, runner pool,
// and the MCP/tool adapter runtime behind them.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codeready-toolchain/warden/pkg/api"
	"github.com/codeready-toolchain/warden/pkg/artifacts"
	"github.com/codeready-toolchain/warden/pkg/bus"
	"github.com/codeready-toolchain/warden/pkg/checkpoint"
	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/database"
	"github.com/codeready-toolchain/warden/pkg/decision"
	"github.com/codeready-toolchain/warden/pkg/gates"
	"github.com/codeready-toolchain/warden/pkg/mcp"
	"github.com/codeready-toolchain/warden/pkg/runner"
	"github.com/codeready-toolchain/warden/pkg/services"
	"github.com/codeready-toolchain/warden/pkg/supervisor"
	"github.com/codeready-toolchain/warden/pkg/tools"
	"github.com/codeready-toolchain/warden/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
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
	slog.Info("Starting warden",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration.
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Store.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Store ready", "path", dbConfig.Path)

	// 3. Event bus and domain services.
	eventBus := bus.New()
	taskService := services.NewTaskService(dbClient.Client, eventBus)
	auditService := services.NewAuditService(dbClient.Client)
	lineageService := services.NewLineageService(dbClient.Client)
	toolCallService := services.NewToolCallService(dbClient.Client, dbClient.DB())
	warnings := services.NewSystemWarningsService()

	// 4. MCP client and health monitor.
	mcpClient := mcp.NewClient(cfg.MCPServerRegistry)
	mcpClient.Connect(ctx, cfg.MCPServerRegistry.ServerIDs())
	defer func() {
		if err := mcpClient.Close(); err != nil {
			slog.Error("Error closing MCP client", "error", err)
		}
	}()
	mcpMonitor := mcp.NewHealthMonitor(mcpClient, cfg.MCPServerRegistry, cfg.MCPHealth)
	mcpMonitor.Start(ctx)
	defer mcpMonitor.Stop()

	// 5. Tool adapter runtime.
	runtime := tools.NewRuntime(cfg.AdapterRegistry, toolCallService, eventBus)
	if err := runtime.RegisterFromConfig(cfg, mcpClient); err != nil {
		slog.Error("Failed to register tool adapters", "error", err)
		os.Exit(1)
	}

	// 6. Governance: decision recorder and supervisor.
	registry := prometheus.NewRegistry()
	recorder := decision.NewRecorder(dbClient.Client)
	redlines, err := gates.NewRedlineValidator()
	if err != nil {
		slog.Error("Failed to compile redline schemas", "error", err)
		os.Exit(1)
	}
	router := supervisor.DefaultRouter(taskService, warnings, redlines, cfg.Supervisor, config.DefaultMaxRetries)
	sup := supervisor.New(dbClient.Client, cfg.Supervisor, eventBus, taskService,
		auditService, recorder, router, supervisor.NewMetrics(registry))
	sup.Start(ctx)
	defer sup.Stop()

	cleanup := supervisor.NewCleanup(sup.Inbox(), cfg.Supervisor.Retention, cfg.Supervisor.CleanupInterval)
	cleanup.Start(ctx)
	defer cleanup.Stop()

	// 7. Runner pool and orphan recovery.
	writer := artifacts.NewWriter(cfg.Runner.ArtifactsDir)
	checkpoints := checkpoint.NewManager(dbClient.Client, dbClient.DB(), "")
	leases := checkpoint.NewLeaseManager(dbClient.Client)
	planner := runner.NewDefaultPlanner(runtime, checkpoint.NewCache(dbClient.Client))
	deps := runner.Deps{
		Tasks:       taskService,
		Audit:       auditService,
		Lineage:     lineageService,
		Checkpoints: checkpoints,
		Leases:      leases,
		Runtime:     runtime,
		Artifacts:   writer,
		Gates:       gates.NewDoneGateRunner(cfg.Gates, writer, ""),
		Router:      runner.NewRoutePlanner(cfg.AdapterRegistry, runtime),
		Ledger:      checkpoint.NewLedger(dbClient.Client),
		Bus:         eventBus,
		Cfg:         cfg.Runner,
		Projects:    cfg.Projects,
		Plan:        planner.Plan,
	}

	orphans := runner.NewOrphan(taskService, auditService, leases, eventBus,
		cfg.Runner.OrphanThreshold, cfg.Runner.OrphanScanInterval)
	orphans.Sweep(ctx) // reap anything left over from the previous process
	orphans.Start(ctx)
	defer orphans.Stop()

	pool := runner.NewPool(deps)
	pool.Start(ctx)
	defer pool.Stop()

	// 8. HTTP API.
	server := api.NewServer(taskService, auditService, warnings, sup.Inbox(),
		recorder, dbClient.DB(), mcpMonitor, pool, registry)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Block until shutdown signal.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("Shutting down", "signal", sig.String())

	// Stop taking requests first; the deferred stops then wind down the
	// pool, supervisor, monitors, and store in reverse start order.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown failed", "error", err)
	}
}
