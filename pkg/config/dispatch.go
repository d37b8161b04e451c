package config

import "time"

// DispatchConfig controls the per-chat work queue and worker lifecycle.
type DispatchConfig struct {
	// QueueMax is the per-chat queue bound. Submits beyond it are rejected
	// with queue_full.
	QueueMax int `yaml:"queue_max"`

	// SLA is the per-Request completion deadline measured from received_at.
	SLA time.Duration `yaml:"sla"`

	// IdleTTL is how long an empty chat worker lingers before it is reaped.
	IdleTTL time.Duration `yaml:"idle_ttl"`

	// DedupWindow is the number of recent message IDs remembered per chat
	// for duplicate-submit rejection.
	DedupWindow int `yaml:"dedup_window"`

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// Requests during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultDispatchConfig returns the built-in dispatch defaults.
func DefaultDispatchConfig() *DispatchConfig {
	return &DispatchConfig{
		QueueMax:                16,
		SLA:                     90 * time.Second,
		IdleTTL:                 2 * time.Minute,
		DedupWindow:             32,
		GracefulShutdownTimeout: 2 * time.Minute,
	}
}
