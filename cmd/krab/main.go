// Krab orchestrator routes personal chat traffic across local and cloud
// model backends, supervises backend health and serves the control API.
package main

import (
	"context"
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

	"github.com/Pavua/krab/pkg/api"
	"github.com/Pavua/krab/pkg/backend"
	"github.com/Pavua/krab/pkg/cleanup"
	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/database"
	"github.com/Pavua/krab/pkg/health"
	"github.com/Pavua/krab/pkg/mood"
	"github.com/Pavua/krab/pkg/ops"
	"github.com/Pavua/krab/pkg/policy"
	"github.com/Pavua/krab/pkg/queue"
	"github.com/Pavua/krab/pkg/router"
	"github.com/Pavua/krab/pkg/stream"
	"github.com/Pavua/krab/pkg/transport"
	"github.com/Pavua/krab/pkg/version"
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

	httpAddr := ":" + getEnv("HTTP_PORT", "8080")
	slog.Info("Starting krab",
		"version", version.Full(),
		"http_addr", httpAddr,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configDir)
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

	// 3. Ops: metrics, alerts, usage ledger, attempt log
	metrics := ops.NewMetrics(prometheus.DefaultRegisterer)
	entStore := ops.NewEntStore(dbClient)
	alerts := ops.NewAlertManager(entStore, metrics, nil, nil)
	ledger := ops.NewUsageLedger(cfg.Routing, entStore, alerts, metrics, nil, nil)
	attemptWriter := ops.NewAttemptWriter(entStore, nil)
	attemptWriter.Start()

	// 4. Backends and health supervision
	registry, err := backend.NewRegistry(cfg.Backends, backend.DefaultQuotaClassifier{}, nil)
	if err != nil {
		slog.Error("Failed to build backend registry", "error", err)
		os.Exit(1)
	}
	supervisor := health.NewSupervisor(health.DefaultConfig(), registry, alerts, nil, nil)
	supervisor.Start(ctx)
	slog.Info("Health supervisor started", "backends", registry.Len())

	// 5. Mood, policy, routing
	moodEngine := mood.NewEngine(mood.NewEntStore(dbClient), nil, nil)
	reactor := mood.NewAutoReactor(nil)
	overrideStore := policy.NewEntOverrideStore(dbClient)
	policyStore := policy.NewStore(cfg.Defaults, overrideStore, nil, nil)

	retention := cleanup.NewService(cleanup.Config{}, entStore, alerts, overrideStore, nil, nil)
	retention.Start(ctx)

	collector, err := stream.NewCollector(cfg.Guardrails, nil)
	if err != nil {
		slog.Error("Failed to build stream collector", "error", err)
		os.Exit(1)
	}
	rtr := router.New(router.Options{
		Routing:    cfg.Routing,
		Guardrails: cfg.Guardrails,
		Registry:   registry,
		Collector:  collector,
		Health:     supervisor,
		Feedback:   moodEngine,
		Budget:     ledger,
		Alerts:     alerts,
	})

	// 6. Reports
	reporter := ops.NewReporter(ledger, alerts, supervisor, time.Minute, nil, nil)
	reporter.Start()

	// 7. Transport and dispatch. Without a bridge URL krab runs API-only.
	var (
		bridge     *transport.WebhookTransport
		dispatcher *queue.Dispatcher
		ingress    *transport.Ingress
	)
	if outURL := os.Getenv("TRANSPORT_OUTBOUND_URL"); outURL != "" {
		bridge, err = transport.NewWebhookTransport(transport.WebhookConfig{
			OutboundURL: outURL,
		}, nil)
		if err != nil {
			slog.Error("Failed to build transport", "error", err)
			os.Exit(1)
		}

		gate := queue.NewConfirmGate(nil)
		replies := queue.NewReplyIndex()
		executor := queue.NewExecutor(rtr, bridge, gate, replies, ledger, attemptWriter, nil)
		dispatcher = queue.NewDispatcher(cfg.Dispatch, executor, metrics, nil, nil)
		dispatcher.Start()

		builder := policy.NewBuilder(cfg.Defaults, policyStore, moodEngine, bridge)
		commands := transport.NewCommandHandler(policyStore, cfg.Backends, rtr.State(),
			moodEngine, reactor, ledger, alerts, supervisor, dispatcher, nil)
		ingress = transport.NewIngress(bridge, builder, dispatcher, gate, replies,
			moodEngine, reactor, commands, nil)
		ingress.Start()
		slog.Info("Transport bridge connected", "outbound_url", outURL)
	} else {
		slog.Warn("TRANSPORT_OUTBOUND_URL not set, running API-only")
	}

	// 8. Control API
	var qstats api.QueueStats
	if dispatcher != nil {
		qstats = dispatcher
	}
	apiServer := api.NewServer(api.Config{
		Addr:   httpAddr,
		APIKey: os.Getenv("WEB_API_KEY"),
	}, dbClient, supervisor, qstats, cfg.Backends, policyStore, rtr.State(),
		reporter, alerts, nil, nil)
	if bridge != nil {
		apiServer.SetIngestHandler(http.HandlerFunc(bridge.HandleInbound))
	}
	if err := apiServer.Start(); err != nil {
		slog.Error("Failed to start control API", "error", err)
		os.Exit(1)
	}

	slog.Info("Krab started")

	// 9. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 10. Graceful shutdown: stop intake first, drain the queue, then flush
	// the attempt log and stop background services.
	if bridge != nil {
		bridge.Close()
	}
	if ingress != nil {
		ingress.Stop()
	}
	if dispatcher != nil {
		dispatcher.Stop()
	}
	attemptWriter.Stop()
	reporter.Stop()
	retention.Stop()
	supervisor.Stop()

	httpCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := apiServer.Stop(httpCtx); err != nil {
		slog.Error("Control API shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
