package mood

import (
	"strings"
	"sync"
	"time"

	"github.com/Pavua/krab/pkg/models"
)

// autoReactGap is the minimum spacing between auto-reactions in one chat.
const autoReactGap = 10 * time.Minute

// reactionTriggers maps message cues to the emoji the assistant reacts
// with. Deliberately small: auto-reactions should feel rare.
var reactionTriggers = []struct {
	cue   string
	emoji string
}{
	{"thank", "❤️"},
	{"спасибо", "❤️"},
	{"congrat", "🎉"},
	{"поздрав", "🎉"},
	{"shipped", "🔥"},
	{"deployed", "🔥"},
}

// AutoReactor decides when the assistant adds an emoji reaction to a user
// message. Rate-limited per chat, with a global kill switch.
type AutoReactor struct {
	mu       sync.Mutex
	enabled  bool
	lastSent map[models.ChatID]time.Time
	now      func() time.Time
}

// NewAutoReactor returns an enabled reactor.
func NewAutoReactor(now func() time.Time) *AutoReactor {
	if now == nil {
		now = time.Now
	}
	return &AutoReactor{
		enabled:  true,
		lastSent: make(map[models.ChatID]time.Time),
		now:      now,
	}
}

// SetEnabled flips the kill switch.
func (a *AutoReactor) SetEnabled(on bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = on
}

// Enabled reports the kill switch state.
func (a *AutoReactor) Enabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.enabled
}

// Pick returns the emoji to react with, if the message warrants one and the
// chat is outside its rate-limit window. Picking consumes the window.
func (a *AutoReactor) Pick(ev models.Event) (string, bool) {
	if ev.Kind != models.EventKindText {
		return "", false
	}
	lower := strings.ToLower(ev.Payload)
	emoji := ""
	for _, t := range reactionTriggers {
		if strings.Contains(lower, t.cue) {
			emoji = t.emoji
			break
		}
	}
	if emoji == "" {
		return "", false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.enabled {
		return "", false
	}
	now := a.now()
	if last, ok := a.lastSent[ev.ChatID]; ok && now.Sub(last) < autoReactGap {
		return "", false
	}
	a.lastSent[ev.ChatID] = now
	return emoji, true
}
