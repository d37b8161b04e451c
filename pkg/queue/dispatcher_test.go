package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
)

func testDispatchConfig() *config.DispatchConfig {
	return &config.DispatchConfig{
		QueueMax:                2,
		SLA:                     30 * time.Second,
		IdleTTL:                 2 * time.Minute,
		DedupWindow:             4,
		GracefulShutdownTimeout: 2 * time.Second,
	}
}

// blockingRunner holds every request until released, recording order.
type blockingRunner struct {
	mu      sync.Mutex
	order   []string
	release chan struct{}
	started chan string
}

func newBlockingRunner() *blockingRunner {
	return &blockingRunner{
		release: make(chan struct{}),
		started: make(chan string, 64),
	}
}

func (r *blockingRunner) Run(ctx context.Context, req *models.Request) {
	r.mu.Lock()
	r.order = append(r.order, req.Event.MessageID)
	r.mu.Unlock()
	r.started <- req.Event.MessageID
	select {
	case <-r.release:
	case <-ctx.Done():
	}
}

func (r *blockingRunner) ran() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

func textEvent(chat, msgID string) models.Event {
	return models.Event{
		ChatID:    models.ChatID(chat),
		MessageID: msgID,
		AuthorID:  "owner",
		Kind:      models.EventKindText,
		Payload:   "hello",
	}
}

func TestSubmitRejectsWhenQueueFull(t *testing.T) {
	runner := newBlockingRunner()
	d := NewDispatcher(testDispatchConfig(), runner, nil, nil, nil)
	defer func() {
		close(runner.release)
		d.Stop()
	}()

	// First submit goes straight to the worker, the next two fill the queue.
	_, code := d.Submit(textEvent("c1", "m0"), models.Context{})
	require.Empty(t, code)
	<-runner.started

	for i := 1; i <= 2; i++ {
		_, code := d.Submit(textEvent("c1", fmt.Sprintf("m%d", i)), models.Context{})
		require.Empty(t, code, "submit %d", i)
	}

	_, code = d.Submit(textEvent("c1", "m-overflow"), models.Context{})
	assert.Equal(t, models.CodeQueueFull, code)
}

func TestSubmitRejectsDuplicateMessageID(t *testing.T) {
	runner := newBlockingRunner()
	d := NewDispatcher(testDispatchConfig(), runner, nil, nil, nil)
	defer func() {
		close(runner.release)
		d.Stop()
	}()

	id, code := d.Submit(textEvent("c1", "m1"), models.Context{})
	require.Empty(t, code)
	require.NotEmpty(t, id)

	_, code = d.Submit(textEvent("c1", "m1"), models.Context{})
	assert.Equal(t, models.CodeDuplicate, code)

	// Same message ID in another chat is not a duplicate.
	_, code = d.Submit(textEvent("c2", "m1"), models.Context{})
	assert.Empty(t, code)
}

func TestWorkerRunsFIFOPerChat(t *testing.T) {
	runner := newBlockingRunner()
	close(runner.release)
	cfg := testDispatchConfig()
	cfg.QueueMax = 8
	d := NewDispatcher(cfg, runner, nil, nil, nil)

	for i := 0; i < 3; i++ {
		_, code := d.Submit(textEvent("c1", fmt.Sprintf("m%d", i)), models.Context{})
		require.Empty(t, code)
	}
	for i := 0; i < 3; i++ {
		select {
		case <-runner.started:
		case <-time.After(2 * time.Second):
			t.Fatal("worker stalled")
		}
	}
	d.Stop()

	assert.Equal(t, []string{"m0", "m1", "m2"}, runner.ran())
}

func TestRequestCarriesSLADeadline(t *testing.T) {
	cfg := testDispatchConfig()
	deadlines := make(chan time.Time, 1)
	runner := runnerFunc(func(ctx context.Context, req *models.Request) {
		dl, ok := ctx.Deadline()
		if ok {
			deadlines <- dl
		}
	})
	d := NewDispatcher(cfg, runner, nil, nil, nil)
	defer d.Stop()

	before := time.Now()
	_, code := d.Submit(textEvent("c1", "m1"), models.Context{})
	require.Empty(t, code)

	select {
	case dl := <-deadlines:
		assert.WithinDuration(t, before.Add(cfg.SLA), dl, time.Second)
	case <-time.After(2 * time.Second):
		t.Fatal("request never ran")
	}
}

type runnerFunc func(ctx context.Context, req *models.Request)

func (f runnerFunc) Run(ctx context.Context, req *models.Request) { f(ctx, req) }

func TestCancelAbortsInflight(t *testing.T) {
	done := make(chan error, 1)
	started := make(chan struct{})
	runner := runnerFunc(func(ctx context.Context, req *models.Request) {
		close(started)
		<-ctx.Done()
		done <- ctx.Err()
	})
	d := NewDispatcher(testDispatchConfig(), runner, nil, nil, nil)
	defer d.Stop()

	_, code := d.Submit(textEvent("c1", "m1"), models.Context{})
	require.Empty(t, code)
	<-started

	require.True(t, d.Cancel("c1"))
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("cancel did not abort the request")
	}

	assert.False(t, d.Cancel("no-such-chat"))
}

func TestIdleWorkersAreReaped(t *testing.T) {
	var clockMu sync.Mutex
	now := time.Now()
	clock := func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		return now
	}
	runner := runnerFunc(func(ctx context.Context, req *models.Request) {})
	d := NewDispatcher(testDispatchConfig(), runner, nil, nil, clock)
	defer d.Stop()

	_, code := d.Submit(textEvent("c1", "m1"), models.Context{})
	require.Empty(t, code)

	// Wait for the worker to drain.
	require.Eventually(t, func() bool {
		_, queued := d.Stats()
		return queued == 0
	}, 2*time.Second, 10*time.Millisecond)

	d.reapIdle()
	workers, _ := d.Stats()
	assert.Equal(t, 1, workers, "fresh worker must survive")

	clockMu.Lock()
	now = now.Add(3 * time.Minute)
	clockMu.Unlock()
	d.reapIdle()
	workers, _ = d.Stats()
	assert.Zero(t, workers)

	// A new submit after reaping spawns a fresh worker.
	_, code = d.Submit(textEvent("c1", "m2"), models.Context{})
	assert.Empty(t, code)
}

func TestDedupRingEvictsOldest(t *testing.T) {
	w := newChatWorker("c1", 4, 2)
	w.remember("a")
	w.remember("b")
	assert.True(t, w.seen("a"))
	w.remember("c")
	assert.False(t, w.seen("a"), "oldest entry must age out of the window")
	assert.True(t, w.seen("b"))
	assert.True(t, w.seen("c"))
}

func TestStopRejectsNewSubmits(t *testing.T) {
	runner := runnerFunc(func(ctx context.Context, req *models.Request) {})
	d := NewDispatcher(testDispatchConfig(), runner, nil, nil, nil)
	d.Stop()

	_, code := d.Submit(textEvent("c1", "m1"), models.Context{})
	assert.Equal(t, models.CodeQueueFull, code)
}
