// Package queue owns per-chat request dispatch: bounded FIFO queues, lazily
// spawned single workers per chat, SLA deadlines, duplicate rejection and
// idle worker reaping.
package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
)

// janitorInterval is how often idle workers are checked for reaping.
const janitorInterval = 30 * time.Second

// Runner executes one request to its terminal outcome, including sending
// exactly one reply or fallback.
type Runner interface {
	Run(ctx context.Context, req *models.Request)
}

// Gauges receives queue occupancy updates. Nil-safe via the dispatcher.
type Gauges interface {
	SetQueueDepth(n int)
	SetActiveWorkers(n int)
}

// Dispatcher fans events out to per-chat workers. One worker per chat,
// spawned on first submit, reaped after IdleTTL of quiet.
type Dispatcher struct {
	cfg    *config.DispatchConfig
	runner Runner
	gauges Gauges
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	workers map[models.ChatID]*chatWorker
	stopped bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewDispatcher builds a dispatcher. gauges may be nil.
func NewDispatcher(cfg *config.DispatchConfig, runner Runner, gauges Gauges, logger *slog.Logger, now func() time.Time) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Dispatcher{
		cfg:     cfg,
		runner:  runner,
		gauges:  gauges,
		logger:  logger.With("component", "dispatch"),
		now:     now,
		workers: make(map[models.ChatID]*chatWorker),
		stopCh:  make(chan struct{}),
	}
}

// Start launches the idle-worker janitor.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-d.stopCh:
				return
			case <-ticker.C:
				d.reapIdle()
			}
		}
	}()
}

// Submit queues one event's request on its chat worker. Returns the request
// ID, or an error code: queue_full when the chat's queue is at capacity,
// duplicate when the message ID was seen recently.
func (d *Dispatcher) Submit(ev models.Event, reqCtx models.Context) (string, models.ErrorCode) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return "", models.CodeQueueFull
	}

	w, ok := d.workers[ev.ChatID]
	if !ok {
		w = newChatWorker(ev.ChatID, d.cfg.QueueMax, d.cfg.DedupWindow)
		d.workers[ev.ChatID] = w
		d.wg.Add(1)
		go d.runWorker(w)
		d.logger.Debug("worker spawned", "chat_id", string(ev.ChatID))
	}

	if w.seen(ev.MessageID) {
		return "", models.CodeDuplicate
	}
	if len(w.ch) >= d.cfg.QueueMax {
		d.logger.Warn("queue full", "chat_id", string(ev.ChatID), "depth", len(w.ch))
		return "", models.CodeQueueFull
	}

	now := d.now()
	req := &models.Request{
		ID:        uuid.NewString(),
		ChatID:    ev.ChatID,
		Event:     ev,
		Context:   reqCtx,
		Deadline:  now.Add(d.cfg.SLA),
		CreatedAt: now,
	}
	w.remember(ev.MessageID)
	w.lastActive = now
	w.ch <- req
	d.updateGaugesLocked()
	return req.ID, ""
}

// Resubmit re-queues a previously built request, used when a confirm grant
// releases a held request. The SLA restarts from now.
func (d *Dispatcher) Resubmit(req *models.Request) models.ErrorCode {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return models.CodeQueueFull
	}
	w, ok := d.workers[req.ChatID]
	if !ok {
		w = newChatWorker(req.ChatID, d.cfg.QueueMax, d.cfg.DedupWindow)
		d.workers[req.ChatID] = w
		d.wg.Add(1)
		go d.runWorker(w)
	}
	if len(w.ch) >= d.cfg.QueueMax {
		return models.CodeQueueFull
	}
	req.Deadline = d.now().Add(d.cfg.SLA)
	w.lastActive = d.now()
	w.ch <- req
	d.updateGaugesLocked()
	return ""
}

// Cancel aborts the chat's in-flight request, if any. Queued requests stay.
func (d *Dispatcher) Cancel(chatID models.ChatID) bool {
	d.mu.Lock()
	w, ok := d.workers[chatID]
	d.mu.Unlock()
	if !ok {
		return false
	}
	return w.cancelInflight()
}

// runWorker is the per-chat loop: one request at a time, FIFO, each under
// its SLA deadline.
func (d *Dispatcher) runWorker(w *chatWorker) {
	defer d.wg.Done()
	for req := range w.ch {
		ctx, cancel := context.WithDeadline(context.Background(), req.Deadline)
		w.setCancel(cancel)
		d.runner.Run(ctx, req)
		w.setCancel(nil)
		cancel()

		d.mu.Lock()
		w.lastActive = d.now()
		d.updateGaugesLocked()
		d.mu.Unlock()
	}
}

// reapIdle closes workers whose queue is empty and whose last activity is
// older than IdleTTL.
func (d *Dispatcher) reapIdle() {
	cutoff := d.now().Add(-d.cfg.IdleTTL)

	d.mu.Lock()
	defer d.mu.Unlock()
	for chatID, w := range d.workers {
		if len(w.ch) == 0 && w.lastActive.Before(cutoff) && !w.busy() {
			close(w.ch)
			delete(d.workers, chatID)
			d.logger.Debug("worker reaped", "chat_id", string(chatID))
		}
	}
	d.updateGaugesLocked()
}

// Stop rejects new submits, closes all queues and waits up to the graceful
// shutdown timeout for in-flight work.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	d.stopped = true
	for _, w := range d.workers {
		close(w.ch)
	}
	d.workers = make(map[models.ChatID]*chatWorker)
	d.mu.Unlock()
	d.stopOnce.Do(func() { close(d.stopCh) })

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d.cfg.GracefulShutdownTimeout):
		d.logger.Warn("graceful shutdown timed out with work in flight")
	}
}

// Stats reports current occupancy for health and ops surfaces.
func (d *Dispatcher) Stats() (workers int, queued int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, w := range d.workers {
		queued += len(w.ch)
	}
	return len(d.workers), queued
}

func (d *Dispatcher) updateGaugesLocked() {
	if d.gauges == nil {
		return
	}
	queued := 0
	for _, w := range d.workers {
		queued += len(w.ch)
	}
	d.gauges.SetQueueDepth(queued)
	d.gauges.SetActiveWorkers(len(d.workers))
}
