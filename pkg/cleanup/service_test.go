package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAttempts struct {
	mu      sync.Mutex
	cutoffs []time.Time
	err     error
}

func (m *memAttempts) PruneAttempts(_ context.Context, olderThan time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cutoffs = append(m.cutoffs, olderThan)
	return 3, m.err
}

type memAlerts struct {
	mu    sync.Mutex
	calls int
}

func (m *memAlerts) Prune(time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return 1
}

type memOverrides struct {
	mu    sync.Mutex
	calls int
}

func (m *memOverrides) PruneExpired(context.Context, time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return 0, nil
}

func TestRunAllUsesRetentionCutoffs(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	attempts := &memAttempts{}
	alerts := &memAlerts{}
	overrides := &memOverrides{}
	s := NewService(Config{AttemptRetention: 48 * time.Hour}, attempts, alerts, overrides, nil, func() time.Time { return now })

	s.RunAll(context.Background())

	require.Len(t, attempts.cutoffs, 1)
	assert.Equal(t, now.Add(-48*time.Hour), attempts.cutoffs[0])
	assert.Equal(t, 1, alerts.calls)
	assert.Equal(t, 1, overrides.calls)
}

func TestRunAllSurvivesPrunerError(t *testing.T) {
	attempts := &memAttempts{err: errors.New("db down")}
	alerts := &memAlerts{}
	s := NewService(Config{}, attempts, alerts, nil, nil, nil)

	s.RunAll(context.Background())

	assert.Equal(t, 1, alerts.calls, "later pruners run despite an earlier failure")
}

func TestStartStopRunsOnce(t *testing.T) {
	attempts := &memAttempts{}
	s := NewService(Config{Interval: time.Hour}, attempts, nil, nil, nil, nil)

	s.Start(context.Background())
	s.Stop()

	attempts.mu.Lock()
	defer attempts.mu.Unlock()
	assert.GreaterOrEqual(t, len(attempts.cutoffs), 1)
}
