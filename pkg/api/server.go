// Package api exposes the local control surface over HTTP: health probes,
// model routing controls, ops reports, alert acks and Prometheus metrics.
// Read endpoints are open; mutating endpoints require the API key.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/database"
	"github.com/Pavua/krab/pkg/models"
	"github.com/Pavua/krab/pkg/ops"
	"github.com/Pavua/krab/pkg/policy"
	"github.com/Pavua/krab/pkg/router"
)

// HealthService is the supervisor surface the API reads.
type HealthService interface {
	Snapshot() models.HealthSnapshot
	Refresh(ctx context.Context) models.HealthSnapshot
}

// QueueStats reports dispatcher occupancy for the health payload.
type QueueStats interface {
	Stats() (workers int, queued int)
}

// Config holds the API server parameters.
type Config struct {
	Addr   string
	APIKey string
}

// Server is the control-surface HTTP server.
type Server struct {
	cfg      Config
	db       *database.Client
	health   HealthService
	queue    QueueStats
	backends *config.BackendRegistry
	policies *policy.Store
	tiers    *router.CloudTierState
	reporter *ops.Reporter
	alerts   *ops.AlertManager
	gatherer prometheus.Gatherer
	logger   *slog.Logger
	ingest   http.Handler
	started  time.Time

	srv *http.Server
}

// SetIngestHandler mounts the transport bridge intake at
// POST /api/transport/events. Must be called before Start.
func (s *Server) SetIngestHandler(h http.Handler) { s.ingest = h }

// NewServer wires the control surface. Any service may be nil; its routes
// then answer 503.
func NewServer(cfg Config, db *database.Client, healthSvc HealthService, queue QueueStats, backends *config.BackendRegistry, policies *policy.Store, tiers *router.CloudTierState, reporter *ops.Reporter, alerts *ops.AlertManager, gatherer prometheus.Gatherer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Server{
		cfg:      cfg,
		db:       db,
		health:   healthSvc,
		queue:    queue,
		backends: backends,
		policies: policies,
		tiers:    tiers,
		reporter: reporter,
		alerts:   alerts,
		gatherer: gatherer,
		logger:   logger.With("component", "api"),
		started:  time.Now(),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health/lite", s.healthLite)
	r.GET("/health", s.healthDeep)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	apiGroup := r.Group("/api")
	apiGroup.GET("/model/catalog", s.modelCatalog)
	apiGroup.GET("/ops/reports/catalog", s.reportsCatalog)
	apiGroup.GET("/ops/reports/latest/:id", s.reportLatest)
	apiGroup.GET("/ops/alerts", s.listAlerts)

	write := apiGroup.Group("", requireAPIKey(s.cfg.APIKey))
	write.POST("/model/apply", s.modelApply)
	write.POST("/ops/alerts/:code/ack", s.ackAlert)
	write.POST("/ops/alerts/:code/unack", s.unackAlert)
	if s.ingest != nil {
		write.POST("/transport/events", gin.WrapH(s.ingest))
	}

	return r
}

// Start begins serving in the background.
func (s *Server) Start() error {
	s.srv = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		s.logger.Info("control API listening", "addr", s.cfg.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("control API failed", "error", err)
		}
	}()
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
