package transport

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
	"github.com/Pavua/krab/pkg/mood"
	"github.com/Pavua/krab/pkg/policy"
	"github.com/Pavua/krab/pkg/queue"
	"github.com/Pavua/krab/pkg/stream"
)

const ownerID = "owner-1"

func testDefaults() *config.Defaults {
	return &config.Defaults{
		OwnerPrincipal: ownerID,
		Persona:        "default",
		Personas:       map[string]string{"default": "You are a concise assistant."},
		ForceMode:      models.ForceAuto,
		GroupReplyMode: models.GroupReplyMention,
		MaxOutputChars: 4000,
		PolicyTTLHours: 24,
	}
}

type ingressFixture struct {
	transport *FakeTransport
	ingress   *Ingress
	moods     *mood.Engine
	replies   *queue.ReplyIndex
	policies  *policy.Store
	dispatch  *queue.Dispatcher
	runner    *recordingRunner
}

type recordingRunner struct {
	mu   sync.Mutex
	reqs []*models.Request
}

func (r *recordingRunner) Run(_ context.Context, req *models.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reqs = append(r.reqs, req)
}

func (r *recordingRunner) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reqs)
}

func (r *recordingRunner) request(i int) *models.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reqs[i]
}

func newIngressFixture(t *testing.T) *ingressFixture {
	t.Helper()
	defaults := testDefaults()
	ft := NewFakeTransport(map[string]string{ownerID: "Pavel"})
	now := time.Now()
	moods := mood.NewEngine(nil, nil, func() time.Time { return now })
	reactor := mood.NewAutoReactor(nil)
	policies := policy.NewStore(defaults, nil, nil, nil)
	builder := policy.NewBuilder(defaults, policies, moods, ft)
	replies := queue.NewReplyIndex()
	gate := queue.NewConfirmGate(nil)

	runner := &recordingRunner{}
	dcfg := &config.DispatchConfig{
		QueueMax: 4, SLA: 10 * time.Second, IdleTTL: time.Minute,
		DedupWindow: 8, GracefulShutdownTimeout: time.Second,
	}
	dispatch := queue.NewDispatcher(dcfg, runner, nil, nil, nil)

	commands := NewCommandHandler(policies, nil, nil, moods, reactor, nil, nil, nil, dispatch, nil)
	ing := NewIngress(ft, builder, dispatch, gate, replies, moods, reactor, commands, nil)
	ing.Start()
	t.Cleanup(func() {
		ing.Stop()
		dispatch.Stop()
	})
	return &ingressFixture{
		transport: ft, ingress: ing, moods: moods, replies: replies,
		policies: policies, dispatch: dispatch, runner: runner,
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 5*time.Millisecond)
}

func TestTextEventReachesDispatcher(t *testing.T) {
	f := newIngressFixture(t)

	f.transport.Deliver(models.Event{
		ChatID: "c1", MessageID: "m1", AuthorID: ownerID,
		Kind: models.EventKindText, Payload: "how do I rotate these keys?",
	})

	waitFor(t, func() bool { return f.runner.count() == 1 })
}

func TestGroupMessageWithoutMentionIsSkipped(t *testing.T) {
	f := newIngressFixture(t)

	f.transport.Deliver(models.Event{
		ChatID: "g1", MessageID: "m1", AuthorID: "someone",
		Kind: models.EventKindText, Payload: "hello all", IsGroup: true,
	})
	f.transport.Deliver(models.Event{
		ChatID: "g1", MessageID: "m2", AuthorID: "someone",
		Kind: models.EventKindText, Payload: "krab, help", IsGroup: true, Mentioned: true,
	})

	waitFor(t, func() bool { return f.runner.count() == 1 })
	assert.Len(t, f.transport.Sent(), 0)
}

func TestOwnerCommandGetsReply(t *testing.T) {
	f := newIngressFixture(t)

	f.transport.Deliver(models.Event{
		ChatID: "c1", MessageID: "m1", AuthorID: ownerID,
		Kind: models.EventKindCommand, Payload: "!policy show",
	})

	waitFor(t, func() bool { return len(f.transport.Sent()) == 1 })
	assert.Contains(t, f.transport.Sent()[0].Text, "force_mode: auto")
	assert.Zero(t, f.runner.count(), "commands never become requests")
}

func TestNonOwnerCommandIsRefused(t *testing.T) {
	f := newIngressFixture(t)

	f.transport.Deliver(models.Event{
		ChatID: "c1", MessageID: "m1", AuthorID: "stranger",
		Kind: models.EventKindCommand, Payload: "!policy set reply_enabled false",
	})

	waitFor(t, func() bool { return len(f.transport.Sent()) == 1 })
	assert.Equal(t, stream.FallbackText(models.CodeBlockedNotOwner), f.transport.Sent()[0].Text)

	// The refused command changed nothing.
	p := f.policies.Policy(context.Background(), "c1")
	assert.True(t, p.ReplyEnabled)
}

func TestBangTextIsTreatedAsCommand(t *testing.T) {
	f := newIngressFixture(t)

	f.transport.Deliver(models.Event{
		ChatID: "c1", MessageID: "m1", AuthorID: ownerID,
		Kind: models.EventKindText, Payload: "!mood",
	})

	waitFor(t, func() bool { return len(f.transport.Sent()) == 1 })
	assert.Contains(t, f.transport.Sent()[0].Text, "neutral")
	assert.Zero(t, f.runner.count())
}

func TestReactionFeedsMoodAndFeedback(t *testing.T) {
	f := newIngressFixture(t)
	f.replies.Note("c1", "reply-7", queue.ReplySource{Profile: models.ProfileChat, ModelID: "qwen-7b"})

	f.transport.Deliver(models.Event{
		ChatID: "c1", MessageID: "m1", AuthorID: ownerID,
		Kind: models.EventKindReaction, Emoji: "👍", ReplyToMessageID: "reply-7",
	})

	waitFor(t, func() bool {
		return f.moods.Score(models.ProfileChat, "qwen-7b") > 0
	})
	assert.Equal(t, models.TonePositive, f.moods.Profile("c1").Tone)
}

func TestNonOwnerReactionScoresNoFeedback(t *testing.T) {
	f := newIngressFixture(t)
	f.replies.Note("c1", "reply-7", queue.ReplySource{Profile: models.ProfileChat, ModelID: "qwen-7b"})

	f.transport.Deliver(models.Event{
		ChatID: "c1", MessageID: "m1", AuthorID: "stranger",
		Kind: models.EventKindReaction, Emoji: "👍", ReplyToMessageID: "reply-7",
	})

	waitFor(t, func() bool { return f.moods.Profile("c1").Tone == models.TonePositive })
	assert.Zero(t, f.moods.Score(models.ProfileChat, "qwen-7b"))
}

func TestAutoReactionOnThanks(t *testing.T) {
	f := newIngressFixture(t)

	f.transport.Deliver(models.Event{
		ChatID: "c1", MessageID: "m1", AuthorID: ownerID,
		Kind: models.EventKindText, Payload: "thanks, that worked",
	})

	waitFor(t, func() bool { return len(f.transport.Reactions()) == 1 })
	r := f.transport.Reactions()[0]
	assert.Equal(t, "❤️", r.Emoji)
	assert.Equal(t, "m1", r.MessageID)
}

func TestMessageTextFeedsMood(t *testing.T) {
	f := newIngressFixture(t)

	f.transport.Deliver(models.Event{
		ChatID: "c1", MessageID: "m1", AuthorID: "stranger",
		Kind: models.EventKindText, Payload: "это не работает",
	})
	f.transport.Deliver(models.Event{
		ChatID: "c1", MessageID: "m2", AuthorID: "stranger",
		Kind: models.EventKindText, Payload: "broken again, ужас",
	})

	waitFor(t, func() bool { return f.moods.Profile("c1").Tone == models.ToneTense })
}

func TestRateLimitDropsExcessMessages(t *testing.T) {
	f := newIngressFixture(t)
	_, err := f.policies.SetField(context.Background(), "c1", "rate_limit_per_min", "2")
	require.NoError(t, err)

	for _, id := range []string{"m1", "m2", "m3"} {
		f.transport.Deliver(models.Event{
			ChatID: "c1", MessageID: id, AuthorID: ownerID,
			Kind: models.EventKindText, Payload: "ping " + id,
		})
	}
	f.transport.Deliver(models.Event{
		ChatID: "c2", MessageID: "m4", AuthorID: ownerID,
		Kind: models.EventKindText, Payload: "unlimited chat",
	})

	// Events are handled in order, so once c2's request lands the third
	// c1 message has already been decided.
	waitFor(t, func() bool { return f.runner.count() == 3 })

	perChat := map[models.ChatID]int{}
	for i := 0; i < f.runner.count(); i++ {
		perChat[f.runner.request(i).ChatID]++
	}
	assert.Equal(t, 2, perChat["c1"])
	assert.Equal(t, 1, perChat["c2"])
	assert.Len(t, f.transport.Sent(), 0, "rate-limited drops are silent")
}

func TestRepliesDisabledSkipsChat(t *testing.T) {
	f := newIngressFixture(t)
	_, err := f.policies.SetField(context.Background(), "c1", "reply_enabled", "false")
	require.NoError(t, err)

	f.transport.Deliver(models.Event{
		ChatID: "c1", MessageID: "m1", AuthorID: ownerID,
		Kind: models.EventKindText, Payload: "are you there?",
	})
	f.transport.Deliver(models.Event{
		ChatID: "c2", MessageID: "m2", AuthorID: ownerID,
		Kind: models.EventKindText, Payload: "are you there?",
	})

	waitFor(t, func() bool { return f.runner.count() == 1 })
	assert.Equal(t, models.ChatID("c2"), f.runner.request(0).ChatID)
}
