package queue

import (
	"strings"
	"sync"
	"time"

	"github.com/Pavua/krab/pkg/models"
)

// confirmTTL is how long a held request waits for its go-ahead.
const confirmTTL = 60 * time.Second

// grantWords are accepted as a confirmation, case-insensitive.
var grantWords = map[string]struct{}{
	"yes": {}, "y": {}, "да": {}, "ok": {}, "давай": {},
}

// ConfirmGate parks requests whose plan needs an explicit owner confirmation
// before spending on the paid tier. One pending request per chat; a newer
// one replaces the older.
type ConfirmGate struct {
	mu      sync.Mutex
	pending map[models.ChatID]pendingConfirm
	now     func() time.Time
}

type pendingConfirm struct {
	req       *models.Request
	expiresAt time.Time
}

// NewConfirmGate builds an empty gate. now may be nil.
func NewConfirmGate(now func() time.Time) *ConfirmGate {
	if now == nil {
		now = time.Now
	}
	return &ConfirmGate{
		pending: make(map[models.ChatID]pendingConfirm),
		now:     now,
	}
}

// Hold parks a request awaiting confirmation, replacing any previous one
// for the chat.
func (g *ConfirmGate) Hold(req *models.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending[req.ChatID] = pendingConfirm{
		req:       req,
		expiresAt: g.now().Add(confirmTTL),
	}
}

// TryGrant checks whether the text confirms the chat's pending request.
// On a grant the request is released for resubmission. Expired holds are
// dropped silently.
func (g *ConfirmGate) TryGrant(chatID models.ChatID, text string) (*models.Request, bool) {
	word := strings.ToLower(strings.TrimSpace(text))
	if _, ok := grantWords[word]; !ok {
		return nil, false
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.pending[chatID]
	if !ok {
		return nil, false
	}
	delete(g.pending, chatID)
	if g.now().After(p.expiresAt) {
		return nil, false
	}
	return p.req, true
}

// Pending reports whether a chat has an unexpired hold.
func (g *ConfirmGate) Pending(chatID models.ChatID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.pending[chatID]
	if !ok {
		return false
	}
	if g.now().After(p.expiresAt) {
		delete(g.pending, chatID)
		return false
	}
	return true
}
