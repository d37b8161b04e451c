package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// HealthStatus is the database portion of the deep health payload: whether a
// round trip works, how long it took, and how contended the pool is.
type HealthStatus struct {
	Reachable     bool  `json:"reachable"`
	LatencyMS     int64 `json:"latency_ms"`
	OpenConns     int   `json:"open_conns"`
	InUseConns    int   `json:"in_use_conns"`
	IdleConns     int   `json:"idle_conns"`
	WaitedForConn int64 `json:"waited_for_conn"`
	WaitedMS      int64 `json:"waited_ms"`
}

// Health runs a round-trip query and snapshots the pool. A plain ping can
// succeed on a dead-but-cached connection; SELECT 1 cannot.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()

	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return &HealthStatus{
			Reachable: false,
			LatencyMS: time.Since(start).Milliseconds(),
		}, fmt.Errorf("database probe: %w", err)
	}

	stats := db.Stats()
	return &HealthStatus{
		Reachable:     true,
		LatencyMS:     time.Since(start).Milliseconds(),
		OpenConns:     stats.OpenConnections,
		InUseConns:    stats.InUse,
		IdleConns:     stats.Idle,
		WaitedForConn: stats.WaitCount,
		WaitedMS:      stats.WaitDuration.Milliseconds(),
	}, nil
}
