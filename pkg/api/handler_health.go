package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Pavua/krab/pkg/database"
	"github.com/Pavua/krab/pkg/models"
	"github.com/Pavua/krab/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// liteHealthResponse is the tiny liveness payload. Watchdogs poll it every
// few seconds, so it reads the cached snapshot and nothing else.
type liteHealthResponse struct {
	OK      bool  `json:"ok"`
	UptimeS int64 `json:"uptime_s"`
}

// healthResponse is the payload of the deep health endpoint.
type healthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Snapshot models.HealthSnapshot  `json:"snapshot"`
	Queue    *queueHealth           `json:"queue,omitempty"`
	Database *database.HealthStatus `json:"database,omitempty"`
}

type queueHealth struct {
	Workers int `json:"workers"`
	Queued  int `json:"queued"`
}

// healthLite handles GET /health/lite: process liveness and uptime, no new
// probes. Cheap enough for aggressive poll intervals.
func (s *Server) healthLite(c *gin.Context) {
	resp := liteHealthResponse{
		OK:      s.health != nil,
		UptimeS: int64(time.Since(s.started).Seconds()),
	}
	if resp.OK && overallStatus(s.health.Snapshot()) == healthStatusUnhealthy {
		resp.OK = false
	}
	status := http.StatusOK
	if !resp.OK {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

// healthDeep handles GET /health: forces a probe round and checks the
// database before answering.
func (s *Server) healthDeep(c *gin.Context) {
	if s.health == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "health supervisor unavailable"})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	snap := s.health.Refresh(ctx)

	var dbHealth *database.HealthStatus
	if s.db != nil {
		h, err := database.Health(ctx, s.db.DB())
		dbHealth = h
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, s.buildHealth(snap, dbHealth))
			return
		}
	}
	c.JSON(statusFor(snap), s.buildHealth(snap, dbHealth))
}

func (s *Server) buildHealth(snap models.HealthSnapshot, db *database.HealthStatus) healthResponse {
	resp := healthResponse{
		Status:   overallStatus(snap),
		Version:  version.GitCommit,
		Snapshot: snap,
		Database: db,
	}
	if s.queue != nil {
		workers, queued := s.queue.Stats()
		resp.Queue = &queueHealth{Workers: workers, Queued: queued}
	}
	return resp
}

// overallStatus folds backend states into one word. A down local backend is
// degraded, not unhealthy: cloud fallback still serves requests.
func overallStatus(snap models.HealthSnapshot) string {
	status := healthStatusHealthy
	for _, bh := range snap.Backends {
		switch bh.State {
		case models.BackendDown, models.BackendDegraded:
			status = healthStatusDegraded
		}
	}
	return status
}

func statusFor(snap models.HealthSnapshot) int {
	if overallStatus(snap) == healthStatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
