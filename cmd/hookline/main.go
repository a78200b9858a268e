// Hookline server — webhook ingress, session queues, the run dispatch
// ledger, effect delivery and routine evaluation in one binary.
package main

import (
	"context"
	"encoding/base64"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hooklinehq/hookline/pkg/agentrunner"
	"github.com/hooklinehq/hookline/pkg/api"
	"github.com/hooklinehq/hookline/pkg/config"
	"github.com/hooklinehq/hookline/pkg/control"
	"github.com/hooklinehq/hookline/pkg/crashguard"
	"github.com/hooklinehq/hookline/pkg/database"
	"github.com/hooklinehq/hookline/pkg/dispatch"
	"github.com/hooklinehq/hookline/pkg/events"
	"github.com/hooklinehq/hookline/pkg/hooks"
	"github.com/hooklinehq/hookline/pkg/ingress"
	"github.com/hooklinehq/hookline/pkg/outbox"
	"github.com/hooklinehq/hookline/pkg/plugin"
	"github.com/hooklinehq/hookline/pkg/plugins/chatsvc"
	"github.com/hooklinehq/hookline/pkg/plugins/repohook"
	"github.com/hooklinehq/hookline/pkg/routine"
	"github.com/hooklinehq/hookline/pkg/services"
	"github.com/hooklinehq/hookline/pkg/sessionqueue"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// resolveSecretDecoder picks the config-secret decoder: AES-GCM when a
// key is provided, plaintext passthrough otherwise (dev only).
func resolveSecretDecoder() plugin.SecretDecoder {
	encoded := os.Getenv("SECRETS_KEY")
	if encoded == "" {
		slog.Warn("SECRETS_KEY not set, plugin config secrets are stored in the clear")
		return plugin.PlainDecoder{}
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		slog.Error("SECRETS_KEY is not valid base64", "error", err)
		os.Exit(1)
	}
	dec, err := plugin.NewAESGCMDecoder(key)
	if err != nil {
		slog.Error("Failed to initialize secret decoder", "error", err)
		os.Exit(1)
	}
	return dec
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
	podID := resolvePodID()

	slog.Info("Starting hookline",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	if err := database.EnsureRuntimeControlRow(ctx, dbClient.DB()); err != nil {
		slog.Error("Failed to ensure runtime control row", "error", err)
		os.Exit(1)
	}

	// 3. One-time startup orphan recovery for this pod's old leases
	if err := dispatch.RecoverStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to recover startup orphans", "error", err)
		// Non-fatal — the periodic sweep catches anything left.
	}

	// 4. Plugin registry with the builtin handlers. Handlers that provide
	// hook-pipeline registrations load them here too.
	registry := plugin.NewRegistry(cfg.TrustMode)
	hookRegistry := hooks.NewRegistry()
	decoder := resolveSecretDecoder()
	for _, h := range []plugin.Handler{chatsvc.New(), repohook.New()} {
		if err := registry.Register(h); err != nil {
			slog.Error("Failed to register builtin plugin", "type", h.Type(), "error", err)
			os.Exit(1)
		}
		hp, ok := h.(plugin.HookProvider)
		if !ok {
			continue
		}
		for _, reg := range hp.Hooks() {
			if err := hookRegistry.Register(reg); err != nil {
				slog.Error("Failed to register plugin hook",
					"type", h.Type(), "hook", reg.Hook, "error", err)
				os.Exit(1)
			}
		}
	}

	// 5. Event recorder + LISTEN fan-out
	recorder := events.NewRecorder(dbClient.Client, dbClient.DB())
	notifyListener := events.NewNotifyListener(dbConfig.DSN())
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}

	// 6. Services and the crash guard
	instanceService := services.NewPluginInstanceService(dbClient.Client, registry, recorder)
	workItemService := services.NewWorkItemService(dbClient.Client)
	guard := crashguard.New(cfg.Guard.Threshold, cfg.Guard.Window, instanceService, recorder)

	hookDispatcher := hooks.NewDispatcher(hookRegistry, recorder, guard, cfg.Hooks.EventBudget)

	ctrl := control.NewService(dbClient.Client, 2*time.Second)
	ledger := dispatch.NewLedger(dbClient.Client)
	queueMgr := sessionqueue.NewManager(dbClient.Client, cfg.Queue, ledger)

	if err := queueMgr.Recover(ctx); err != nil {
		slog.Error("Failed to recover session queue lanes", "error", err)
	}

	// 7. Agent runner client (lazy dial; connects on first run)
	runnerAddr := getEnv("AGENT_RUNNER_ADDR", "localhost:50051")
	runner, err := agentrunner.NewGRPCRunner(runnerAddr)
	if err != nil {
		slog.Error("Failed to initialize agent runner client", "addr", runnerAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := runner.Close(); err != nil {
			slog.Error("Error closing agent runner client", "error", err)
		}
	}()
	slog.Info("Agent runner client initialized", "addr", runnerAddr)

	// 8. Worker pools
	dispatchPool := dispatch.NewPool(podID, dbClient.Client, cfg.Dispatch, runner, ctrl, queueMgr, hookDispatcher)
	if err := dispatchPool.Start(ctx); err != nil {
		slog.Error("Failed to start dispatch pool", "error", err)
		os.Exit(1)
	}

	deliverer := outbox.NewDeliverer(dbClient.Client, registry, decoder)
	outboxPool := outbox.NewPool(podID, dbClient.Client, cfg.Outbox, deliverer, hookDispatcher, registry.Types())
	if err := outboxPool.Start(ctx); err != nil {
		slog.Error("Failed to start outbox pool", "error", err)
		os.Exit(1)
	}

	// 9. Routine evaluator
	probes := routine.NewProbeRegistry(dbClient.Client)
	routineService := routine.NewService(dbClient.Client, ledger, probes)
	scheduler := routine.NewScheduler(dbClient.Client, cfg.Routines, routineService, ledger, probes)
	scheduler.Start(ctx)
	drain := routine.NewDrain(podID, dbClient.Client, cfg.Routines, routineService)
	drain.Start(ctx)

	// 10. HTTP server
	ingressRouter := ingress.NewRouter(dbClient.Client, registry, decoder,
		hookDispatcher, recorder, queueMgr, routineService)
	httpServer := api.NewServer(dbClient, ingressRouter, ctrl, routineService,
		instanceService, workItemService, ledger, queueMgr, dispatchPool, guard)

	serverErr := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-serverErr:
		slog.Error("HTTP server failed", "error", err)
	}

	// 12. Graceful shutdown: stop producing before stopping consumers.
	scheduler.Stop()
	drain.Stop()
	queueMgr.Stop()
	outboxPool.Stop()

	done := make(chan struct{})
	go func() {
		dispatchPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Dispatch pool drained")
	case <-time.After(cfg.Dispatch.GracefulShutdownTimeout):
		slog.Warn("Shutdown timeout exceeded, remaining runs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	notifyListener.Stop(ctx)
	slog.Info("Shutdown complete")
}
