package mood

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Pavua/krab/pkg/models"
)

func reaction(chatID models.ChatID, emoji string) models.Event {
	return models.Event{
		ChatID:    chatID,
		MessageID: "m1",
		Kind:      models.EventKindReaction,
		Emoji:     emoji,
	}
}

func TestProfileTonesFromReactions(t *testing.T) {
	now := time.Now()
	e := NewEngine(nil, nil, func() time.Time { return now })

	assert.Equal(t, models.ToneNeutral, e.Profile("c1").Tone)

	e.IngestReaction(context.Background(), reaction("c1", "👍"), false)
	e.IngestReaction(context.Background(), reaction("c1", "❤️"), false)
	assert.Equal(t, models.TonePositive, e.Profile("c1").Tone)

	e.IngestReaction(context.Background(), reaction("c2", "👎"), false)
	e.IngestReaction(context.Background(), reaction("c2", "💩"), false)
	assert.Equal(t, models.ToneTense, e.Profile("c2").Tone)

	e.IngestReaction(context.Background(), reaction("c3", "🤬"), false)
	e.IngestReaction(context.Background(), reaction("c3", "😡"), false)
	assert.Equal(t, models.ToneHostile, e.Profile("c3").Tone)
}

func TestTextSentimentFeedsMood(t *testing.T) {
	now := time.Now()
	e := NewEngine(nil, nil, func() time.Time { return now })

	e.IngestText("c1", "спасибо, отлично сработало")
	e.IngestText("c1", "great, love it")
	assert.Equal(t, models.TonePositive, e.Profile("c1").Tone)

	e.IngestText("c2", "this is wrong and not working")
	e.IngestText("c2", "не работает, ужас")
	assert.Equal(t, models.ToneTense, e.Profile("c2").Tone)

	e.IngestText("c3", "заткнись")
	e.IngestText("c3", "shut up already")
	assert.Equal(t, models.ToneHostile, e.Profile("c3").Tone)

	e.IngestText("c4", "what time is it")
	assert.Equal(t, models.ToneNeutral, e.Profile("c4").Tone)
}

func TestTextSentimentWeakerThanReactions(t *testing.T) {
	now := time.Now()
	e := NewEngine(nil, nil, func() time.Time { return now })

	// One grumpy message alone does not flip the tone.
	e.IngestText("c1", "это не работает")
	assert.Equal(t, models.ToneNeutral, e.Profile("c1").Tone)

	e.IngestReaction(context.Background(), reaction("c1", "👎"), false)
	assert.Equal(t, models.ToneTense, e.Profile("c1").Tone)
}

func TestMoodDecaysBackToNeutral(t *testing.T) {
	now := time.Now()
	e := NewEngine(nil, nil, func() time.Time { return now })

	e.IngestReaction(context.Background(), reaction("c1", "👍"), false)
	e.IngestReaction(context.Background(), reaction("c1", "👍"), false)
	assert.Equal(t, models.TonePositive, e.Profile("c1").Tone)

	now = now.Add(8 * time.Hour)
	assert.Equal(t, models.ToneNeutral, e.Profile("c1").Tone)
}

func TestFeedbackScoreBoundedAndDecaying(t *testing.T) {
	now := time.Now()
	e := NewEngine(nil, nil, func() time.Time { return now })

	for i := 0; i < 10; i++ {
		e.RecordFeedback(models.ProfileChat, "qwen-7b", "👍")
	}
	assert.Equal(t, feedbackBound, e.Score(models.ProfileChat, "qwen-7b"))

	now = now.Add(feedbackHalfLife)
	assert.InDelta(t, feedbackBound/2, e.Score(models.ProfileChat, "qwen-7b"), 0.01)

	e.RecordFeedback(models.ProfileChat, "qwen-7b", "👎")
	assert.InDelta(t, feedbackBound/2-1, e.Score(models.ProfileChat, "qwen-7b"), 0.01)
}

func TestFeedbackIgnoresNeutralEmoji(t *testing.T) {
	e := NewEngine(nil, nil, nil)

	e.RecordFeedback(models.ProfileChat, "qwen-7b", "🤔")
	assert.Zero(t, e.Score(models.ProfileChat, "qwen-7b"))
}

func TestFeedbackScopedByProfile(t *testing.T) {
	now := time.Now()
	e := NewEngine(nil, nil, func() time.Time { return now })

	e.RecordFeedback(models.ProfileSecurity, "claude-haiku", "👍")
	assert.Zero(t, e.Score(models.ProfileChat, "claude-haiku"))
	assert.Equal(t, 1.0, e.Score(models.ProfileSecurity, "claude-haiku"))
}

func TestAutoReactorRateLimitAndKillSwitch(t *testing.T) {
	now := time.Now()
	a := NewAutoReactor(func() time.Time { return now })

	ev := models.Event{ChatID: "c1", Kind: models.EventKindText, Payload: "thank you so much!"}

	emoji, ok := a.Pick(ev)
	assert.True(t, ok)
	assert.Equal(t, "❤️", emoji)

	// Second pick inside the window is suppressed.
	_, ok = a.Pick(ev)
	assert.False(t, ok)

	// Outside the window it fires again.
	now = now.Add(autoReactGap + time.Minute)
	_, ok = a.Pick(ev)
	assert.True(t, ok)

	// Kill switch wins over everything.
	now = now.Add(autoReactGap + time.Minute)
	a.SetEnabled(false)
	_, ok = a.Pick(ev)
	assert.False(t, ok)
}

func TestAutoReactorIgnoresPlainMessages(t *testing.T) {
	a := NewAutoReactor(nil)

	_, ok := a.Pick(models.Event{ChatID: "c1", Kind: models.EventKindText, Payload: "what time is it"})
	assert.False(t, ok)
}
