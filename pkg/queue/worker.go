package queue

import (
	"context"
	"sync"
	"time"

	"github.com/Pavua/krab/pkg/models"
)

// chatWorker holds the queue and dedup state for one chat. The dispatcher
// owns the map entry; the worker goroutine owns the channel reads.
type chatWorker struct {
	chatID     models.ChatID
	ch         chan *models.Request
	lastActive time.Time

	mu       sync.Mutex
	inflight context.CancelFunc

	// dedup is a fixed ring of recent message IDs.
	dedup    []string
	dedupIdx int
}

func newChatWorker(chatID models.ChatID, queueMax, dedupWindow int) *chatWorker {
	return &chatWorker{
		chatID:     chatID,
		ch:         make(chan *models.Request, queueMax),
		lastActive: time.Now(),
		dedup:      make([]string, 0, dedupWindow),
	}
}

func (w *chatWorker) seen(messageID string) bool {
	if messageID == "" {
		return false
	}
	for _, id := range w.dedup {
		if id == messageID {
			return true
		}
	}
	return false
}

func (w *chatWorker) remember(messageID string) {
	if messageID == "" || cap(w.dedup) == 0 {
		return
	}
	if len(w.dedup) < cap(w.dedup) {
		w.dedup = append(w.dedup, messageID)
		return
	}
	w.dedup[w.dedupIdx] = messageID
	w.dedupIdx = (w.dedupIdx + 1) % cap(w.dedup)
}

func (w *chatWorker) setCancel(cancel context.CancelFunc) {
	w.mu.Lock()
	w.inflight = cancel
	w.mu.Unlock()
}

func (w *chatWorker) cancelInflight() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inflight == nil {
		return false
	}
	w.inflight()
	return true
}

func (w *chatWorker) busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inflight != nil
}
