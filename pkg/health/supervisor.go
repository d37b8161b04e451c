// Package health owns the process-wide health picture: periodic backend
// probes with hysteresis, the cached lite surface, coalesced deep refreshes
// and the local soft-heal path.
package health

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Pavua/krab/pkg/backend"
	"github.com/Pavua/krab/pkg/models"
)

// Config tunes the supervisor.
type Config struct {
	// ProbeInterval is the background probe cadence.
	ProbeInterval time.Duration
	// ProbeTimeout bounds each individual probe.
	ProbeTimeout time.Duration
	// FailThreshold consecutive failures mark a backend down.
	FailThreshold int
	// OkThreshold consecutive successes mark it up again.
	OkThreshold int
	// HealCooldown is the minimum gap between soft-heal attempts.
	HealCooldown time.Duration
}

// DefaultConfig returns the standard supervisor tuning.
func DefaultConfig() Config {
	return Config{
		ProbeInterval: 15 * time.Second,
		ProbeTimeout:  2 * time.Second,
		FailThreshold: 3,
		OkThreshold:   2,
		HealCooldown:  5 * time.Minute,
	}
}

// AlertSink receives health alerts.
type AlertSink interface {
	Raise(code string, severity string, message string)
}

// Supervisor probes all backends on a cadence and serves snapshots.
// The lite surface reads the cached snapshot and never blocks on probes;
// Deep coalesces concurrent refresh requests into one probe round.
type Supervisor struct {
	cfg      Config
	registry *backend.Registry
	alerts   AlertSink
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	trackers  map[string]*tracker
	snapshot  models.HealthSnapshot
	refreshCh chan struct{} // closed when the in-flight refresh finishes; nil when idle

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSupervisor builds a supervisor over the backend registry.
func NewSupervisor(cfg Config, registry *backend.Registry, alerts AlertSink, logger *slog.Logger, now func() time.Time) *Supervisor {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	s := &Supervisor{
		cfg:      cfg,
		registry: registry,
		alerts:   alerts,
		logger:   logger.With("component", "health"),
		now:      now,
		trackers: make(map[string]*tracker),
		stopCh:   make(chan struct{}),
	}
	for _, id := range registry.IDs() {
		s.trackers[id] = newTracker()
	}
	s.snapshot = s.buildSnapshotLocked()
	return s
}

// Start launches the background probe loop.
func (s *Supervisor) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.cfg.ProbeInterval)
		defer ticker.Stop()
		s.Refresh(ctx)
		for {
			select {
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Refresh(ctx)
			}
		}
	}()
}

// Stop terminates the probe loop and waits for it.
func (s *Supervisor) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// Snapshot returns the cached health picture. Never blocks on probes.
func (s *Supervisor) Snapshot() models.HealthSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySnapshot(s.snapshot)
}

// Refresh runs one probe round. Concurrent callers coalesce onto the same
// round instead of stampeding the backends.
func (s *Supervisor) Refresh(ctx context.Context) models.HealthSnapshot {
	s.mu.Lock()
	if s.refreshCh != nil {
		ch := s.refreshCh
		s.mu.Unlock()
		select {
		case <-ch:
		case <-ctx.Done():
		}
		return s.Snapshot()
	}
	ch := make(chan struct{})
	s.refreshCh = ch
	s.mu.Unlock()

	s.probeAll(ctx)

	s.mu.Lock()
	s.refreshCh = nil
	s.snapshot = s.buildSnapshotLocked()
	snap := copySnapshot(s.snapshot)
	s.mu.Unlock()
	close(ch)
	return snap
}

// probeAll probes every backend concurrently, each under its own timeout.
func (s *Supervisor) probeAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, id := range s.registry.IDs() {
		b, ok := s.registry.Get(id)
		if !ok {
			continue
		}
		wg.Add(1)
		go func(id string, b backend.Backend) {
			defer wg.Done()
			probeCtx, cancel := context.WithTimeout(ctx, s.cfg.ProbeTimeout)
			defer cancel()

			start := s.now()
			err := b.Probe(probeCtx)
			latency := s.now().Sub(start)

			s.mu.Lock()
			tr := s.trackers[id]
			changed := tr.observe(err, latency, s.now(), s.cfg.FailThreshold, s.cfg.OkThreshold)
			state := tr.state
			s.mu.Unlock()

			if changed {
				s.logger.Info("backend state changed", "backend_id", id, "state", string(state))
				if state == models.BackendDown {
					if s.alerts != nil {
						s.alerts.Raise("backend_down", "high", "backend "+id+" is down")
					}
					s.maybeHeal(ctx, id, b)
				}
			}
		}(id, b)
	}
	wg.Wait()
}

// maybeHeal attempts a soft-heal on local backends that went down: reload
// the preferred model, with retries and a cooldown so a dead runtime is not
// hammered.
func (s *Supervisor) maybeHeal(ctx context.Context, id string, b backend.Backend) {
	loader, ok := b.(backend.ModelLoader)
	if !ok || b.Tier() != models.TierLocal {
		return
	}
	cfg, ok := s.registry.Config(id)
	if !ok || len(cfg.Models) == 0 {
		return
	}

	s.mu.Lock()
	tr := s.trackers[id]
	if !tr.healedAt.IsZero() && s.now().Sub(tr.healedAt) < s.cfg.HealCooldown {
		s.mu.Unlock()
		return
	}
	tr.healedAt = s.now()
	s.mu.Unlock()

	modelID := cfg.Models[0]
	s.logger.Info("attempting soft-heal", "backend_id", id, "model", modelID)

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	err := backoff.Retry(func() error {
		healCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		return loader.LoadModel(healCtx, modelID)
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		s.logger.Warn("soft-heal failed", "backend_id", id, "error", err)
		if s.alerts != nil {
			s.alerts.Raise("soft_heal_failed", "high", "soft-heal of "+id+" failed")
		}
		return
	}
	s.logger.Info("soft-heal succeeded", "backend_id", id)
}

// buildSnapshotLocked assembles the public snapshot from tracker state.
func (s *Supervisor) buildSnapshotLocked() models.HealthSnapshot {
	snap := models.HealthSnapshot{
		Backends:    make(map[string]models.BackendHealth, len(s.trackers)),
		RefreshedAt: s.now(),
	}
	downLocal := false
	anyDown := false
	for id, tr := range s.trackers {
		h := tr.health(s.cfg.HealCooldown)
		snap.Backends[id] = h
		if h.State == models.BackendDown {
			anyDown = true
			if b, ok := s.registry.Get(id); ok && b.Tier() == models.TierLocal {
				downLocal = true
			}
		}
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	snap.Resources = models.ResourceGauges{
		HeapBytes:    mem.HeapAlloc,
		NumGoroutine: runtime.NumGoroutine(),
	}

	switch {
	case downLocal:
		snap.NextAction = "local backend down: check the runtime process, a model reload was scheduled"
	case anyDown:
		snap.NextAction = "cloud backend down: verify connectivity and credentials"
	}
	return snap
}

func copySnapshot(in models.HealthSnapshot) models.HealthSnapshot {
	out := in
	out.Backends = make(map[string]models.BackendHealth, len(in.Backends))
	for k, v := range in.Backends {
		out.Backends[k] = v
	}
	return out
}
