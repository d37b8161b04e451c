package health

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavua/krab/pkg/backend"
	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
)

func TestTrackerHysteresis(t *testing.T) {
	tr := newTracker()
	now := time.Now()
	boom := errors.New("boom")

	// Two failures degrade but do not mark down.
	tr.observe(boom, 0, now, 3, 2)
	tr.observe(boom, 0, now, 3, 2)
	assert.Equal(t, models.BackendDegraded, tr.state)

	// Third consecutive failure marks down.
	tr.observe(boom, 0, now, 3, 2)
	assert.Equal(t, models.BackendDown, tr.state)

	// One success is not enough to come back.
	tr.observe(nil, 10*time.Millisecond, now, 3, 2)
	assert.Equal(t, models.BackendDown, tr.state)

	// Second consecutive success restores up.
	tr.observe(nil, 10*time.Millisecond, now, 3, 2)
	assert.Equal(t, models.BackendUp, tr.state)
	assert.Empty(t, tr.lastErr)
}

func TestTrackerBlipDoesNotFlap(t *testing.T) {
	tr := newTracker()
	now := time.Now()

	tr.observe(errors.New("blip"), 0, now, 3, 2)
	assert.NotEqual(t, models.BackendDown, tr.state)

	tr.observe(nil, time.Millisecond, now, 3, 2)
	tr.observe(nil, time.Millisecond, now, 3, 2)
	assert.Equal(t, models.BackendUp, tr.state)
}

type healableFake struct {
	*backend.Fake
	mu     sync.Mutex
	loaded []string
}

func (h *healableFake) LoadModel(_ context.Context, modelID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loaded = append(h.loaded, modelID)
	return nil
}

func (h *healableFake) Loaded() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.loaded...)
}

type recordingSink struct {
	mu    sync.Mutex
	codes []string
}

func (r *recordingSink) Raise(code, severity, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = append(r.codes, code)
}

func (r *recordingSink) Codes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.codes...)
}

func newSupervisorFixture(localErr error) (*Supervisor, *healableFake, *recordingSink) {
	local := &healableFake{Fake: backend.NewFake("lmstudio", models.TierLocal, "qwen-7b")}
	local.ProbeErr = localErr

	registry := backend.NewRegistryFromBackends(
		map[string]backend.Backend{"lmstudio": local},
		map[string]config.BackendConfig{
			"lmstudio": {ID: "lmstudio", Tier: models.TierLocal, Models: []string{"qwen-7b"}, Local: true},
		},
	)
	sink := &recordingSink{}
	cfg := DefaultConfig()
	cfg.FailThreshold = 2
	s := NewSupervisor(cfg, registry, sink, nil, nil)
	return s, local, sink
}

func TestSupervisorMarksDownAndHeals(t *testing.T) {
	s, local, sink := newSupervisorFixture(errors.New("connection refused"))
	ctx := context.Background()

	s.Refresh(ctx)
	snap := s.Refresh(ctx)

	bh := snap.Backend("lmstudio")
	assert.Equal(t, models.BackendDown, bh.State)
	assert.False(t, bh.Up)
	assert.Contains(t, sink.Codes(), "backend_down")
	assert.Contains(t, snap.NextAction, "local backend down")

	// The soft-heal path reloaded the preferred model.
	require.NotEmpty(t, local.Loaded())
	assert.Equal(t, "qwen-7b", local.Loaded()[0])
}

func TestSupervisorHealCooldown(t *testing.T) {
	s, local, _ := newSupervisorFixture(errors.New("refused"))
	ctx := context.Background()

	// Drive down repeatedly; only one heal may happen inside the cooldown.
	for i := 0; i < 5; i++ {
		s.Refresh(ctx)
	}
	assert.Len(t, local.Loaded(), 1)
}

func TestSupervisorRecovers(t *testing.T) {
	s, local, _ := newSupervisorFixture(errors.New("refused"))
	ctx := context.Background()

	s.Refresh(ctx)
	s.Refresh(ctx)
	require.Equal(t, models.BackendDown, s.Snapshot().Backend("lmstudio").State)

	local.ProbeErr = nil
	s.Refresh(ctx)
	assert.Equal(t, models.BackendDown, s.Snapshot().Backend("lmstudio").State)
	s.Refresh(ctx)
	assert.Equal(t, models.BackendUp, s.Snapshot().Backend("lmstudio").State)
	assert.Empty(t, s.Snapshot().NextAction)
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _, _ := newSupervisorFixture(nil)

	snap := s.Snapshot()
	snap.Backends["lmstudio"] = models.BackendHealth{State: models.BackendDown}

	assert.NotEqual(t, models.BackendDown, s.Snapshot().Backend("lmstudio").State)
}
