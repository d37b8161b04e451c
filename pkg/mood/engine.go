// Package mood tracks per-chat emotional tone from reactions and converts
// owner reactions on assistant messages into per-model feedback scores.
// Mood is advisory only: it may color persona tone, never routing.
package mood

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/Pavua/krab/pkg/models"
)

// Decay and bound constants for the two decayed signals the engine keeps.
const (
	// moodHalfLife controls how fast chat tone returns to neutral.
	moodHalfLife = time.Hour

	// feedbackHalfLife controls how fast model feedback fades.
	feedbackHalfLife = 6 * time.Hour

	// feedbackBound clamps accumulated feedback per (profile, model).
	feedbackBound = 5.0
)

// ReactionStore persists the append-only reaction log.
type ReactionStore interface {
	AppendReaction(ctx context.Context, chatID models.ChatID, messageID, emoji string, fromOwner bool) error
}

type scoreKey struct {
	profile models.TaskProfile
	modelID string
}

type decayed struct {
	value     float64
	updatedAt time.Time
}

func (d *decayed) current(now time.Time, halfLife time.Duration) float64 {
	if d.updatedAt.IsZero() {
		return 0
	}
	age := now.Sub(d.updatedAt)
	if age <= 0 {
		return d.value
	}
	return d.value * math.Pow(0.5, age.Seconds()/halfLife.Seconds())
}

func (d *decayed) add(now time.Time, halfLife time.Duration, delta, lo, hi float64) {
	v := d.current(now, halfLife) + delta
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	d.value = v
	d.updatedAt = now
}

type chatMood struct {
	positive decayed
	negative decayed
	hostile  decayed
	lastSeen time.Time
}

// Engine is the mood and feedback state holder. Safe for concurrent use.
type Engine struct {
	mu     sync.Mutex
	chats  map[models.ChatID]*chatMood
	scores map[scoreKey]*decayed
	store  ReactionStore
	logger *slog.Logger
	now    func() time.Time
}

// NewEngine builds a mood engine. store may be nil in tests.
func NewEngine(store ReactionStore, logger *slog.Logger, now func() time.Time) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Engine{
		chats:  make(map[models.ChatID]*chatMood),
		scores: make(map[scoreKey]*decayed),
		store:  store,
		logger: logger.With("component", "mood"),
		now:    now,
	}
}

// IngestReaction folds a reaction event into the chat's mood and appends it
// to the reaction log. Persistence failures are logged, never surfaced: mood
// is advisory.
func (e *Engine) IngestReaction(ctx context.Context, ev models.Event, fromOwner bool) {
	now := e.now()

	e.mu.Lock()
	cm, ok := e.chats[ev.ChatID]
	if !ok {
		cm = &chatMood{}
		e.chats[ev.ChatID] = cm
	}
	switch {
	case hostileEmoji[ev.Emoji]:
		cm.hostile.add(now, moodHalfLife, 1, 0, 20)
		cm.negative.add(now, moodHalfLife, 1, 0, 20)
	case negativeEmoji[ev.Emoji]:
		cm.negative.add(now, moodHalfLife, 1, 0, 20)
	case positiveEmoji[ev.Emoji]:
		cm.positive.add(now, moodHalfLife, 1, 0, 20)
	}
	cm.lastSeen = now
	e.mu.Unlock()

	if e.store != nil {
		if err := e.store.AppendReaction(ctx, ev.ChatID, ev.MessageID, ev.Emoji, fromOwner); err != nil {
			e.logger.Warn("reaction append failed", "chat_id", string(ev.ChatID), "error", err)
		}
	}
}

// IngestText folds lexical sentiment cues from a message into the chat's
// mood. Text is a weaker signal than an explicit reaction, so it moves the
// tone by half as much; hostile cues keep full weight.
func (e *Engine) IngestText(chatID models.ChatID, payload string) {
	pos, neg, hos := textSentiment(payload)
	if !pos && !neg && !hos {
		return
	}
	now := e.now()

	e.mu.Lock()
	defer e.mu.Unlock()
	cm, ok := e.chats[chatID]
	if !ok {
		cm = &chatMood{}
		e.chats[chatID] = cm
	}
	if hos {
		cm.hostile.add(now, moodHalfLife, 1, 0, 20)
	}
	if neg {
		cm.negative.add(now, moodHalfLife, 0.5, 0, 20)
	}
	if pos {
		cm.positive.add(now, moodHalfLife, 0.5, 0, 20)
	}
	cm.lastSeen = now
}

// RecordFeedback applies an owner reaction on an assistant message to the
// (profile, model) score that produced it.
func (e *Engine) RecordFeedback(profile models.TaskProfile, modelID, emoji string) {
	delta := feedbackDelta(emoji)
	if delta == 0 || modelID == "" {
		return
	}
	now := e.now()

	e.mu.Lock()
	key := scoreKey{profile: profile, modelID: modelID}
	d, ok := e.scores[key]
	if !ok {
		d = &decayed{}
		e.scores[key] = d
	}
	d.add(now, feedbackHalfLife, delta, -feedbackBound, feedbackBound)
	value := d.value
	e.mu.Unlock()

	e.logger.Info("model feedback recorded",
		"profile", string(profile), "model", modelID, "delta", delta, "score", value)
}

// Score returns the current decayed feedback for a (profile, model) pair.
func (e *Engine) Score(profile models.TaskProfile, modelID string) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	d, ok := e.scores[scoreKey{profile: profile, modelID: modelID}]
	if !ok {
		return 0
	}
	return d.current(e.now(), feedbackHalfLife)
}

// Profile returns the advisory mood for a chat.
func (e *Engine) Profile(chatID models.ChatID) models.MoodProfile {
	e.mu.Lock()
	defer e.mu.Unlock()

	cm, ok := e.chats[chatID]
	if !ok {
		return models.MoodProfile{Tone: models.ToneNeutral}
	}
	now := e.now()
	pos := cm.positive.current(now, moodHalfLife)
	neg := cm.negative.current(now, moodHalfLife)
	hos := cm.hostile.current(now, moodHalfLife)

	tone := models.ToneNeutral
	switch {
	case hos >= 2:
		tone = models.ToneHostile
	case neg > pos && neg >= 1:
		tone = models.ToneTense
	case pos > neg && pos >= 1:
		tone = models.TonePositive
	}
	return models.MoodProfile{Tone: tone, LastUpdate: cm.lastSeen}
}
