package ops

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Pavua/krab/pkg/models"
)

// writerBuffer bounds the pending attempt rows. The write path is
// fire-and-forget: when the buffer is full the oldest row is dropped, never
// the reply path blocked.
const writerBuffer = 256

// AttemptRow is one attempt log entry headed for storage.
type AttemptRow struct {
	RequestID   string
	ChatID      models.ChatID
	Attempt     models.Attempt
	ErrorDetail string
}

// AttemptStore persists attempt rows.
type AttemptStore interface {
	InsertAttempt(ctx context.Context, row AttemptRow) error
}

// AttemptWriter drains attempt rows to storage in the background.
type AttemptWriter struct {
	ch       chan AttemptRow
	store    AttemptStore
	logger   *slog.Logger
	wg       sync.WaitGroup
	stopOnce sync.Once
	mu       sync.Mutex
	dropped  int64
}

// NewAttemptWriter builds a writer over the store.
func NewAttemptWriter(store AttemptStore, logger *slog.Logger) *AttemptWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttemptWriter{
		ch:     make(chan AttemptRow, writerBuffer),
		store:  store,
		logger: logger.With("component", "attempt_writer"),
	}
}

// Start launches the drain loop.
func (w *AttemptWriter) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for row := range w.ch {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := w.store.InsertAttempt(ctx, row); err != nil {
				w.logger.Error("attempt insert failed",
					"request_id", row.RequestID, "error", err)
			}
			cancel()
		}
	}()
}

// Stop closes the intake and waits for the buffer to drain.
func (w *AttemptWriter) Stop() {
	w.stopOnce.Do(func() { close(w.ch) })
	w.wg.Wait()
}

// Enqueue hands off a row without blocking. A full buffer drops the oldest
// pending row to make room.
func (w *AttemptWriter) Enqueue(row AttemptRow) {
	for {
		select {
		case w.ch <- row:
			return
		default:
		}
		select {
		case <-w.ch:
			w.mu.Lock()
			w.dropped++
			n := w.dropped
			w.mu.Unlock()
			if n%100 == 1 {
				w.logger.Warn("attempt log backlogged, dropping oldest", "dropped_total", n)
			}
		default:
		}
	}
}

// Dropped reports how many rows were discarded due to backpressure.
func (w *AttemptWriter) Dropped() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dropped
}
