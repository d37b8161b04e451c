package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavua/krab/pkg/models"
	"github.com/Pavua/krab/pkg/router"
	"github.com/Pavua/krab/pkg/stream"
)

type fakePlanner struct {
	pf       models.Preflight
	res      router.ExecResult
	attempts []models.Attempt
	executed int
}

func (f *fakePlanner) Preflight(*models.Request) models.Preflight { return f.pf }

func (f *fakePlanner) Execute(_ context.Context, req *models.Request, _ models.Preflight) router.ExecResult {
	f.executed++
	req.Attempts = append(req.Attempts, f.attempts...)
	return f.res
}

type fakeSender struct {
	mu   sync.Mutex
	sent []string
	next int
}

func (s *fakeSender) SendMessage(_ context.Context, _ models.ChatID, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, text)
	s.next++
	return fmt.Sprintf("reply-%d", s.next), nil
}

func (s *fakeSender) messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

type countingLedger struct {
	mu       sync.Mutex
	attempts []models.Attempt
}

func (c *countingLedger) RecordAttempt(_ context.Context, a models.Attempt) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attempts = append(c.attempts, a)
}

func okPlanner(text, modelID string) *fakePlanner {
	return &fakePlanner{
		pf: models.Preflight{Plan: &models.Plan{Tier: models.TierLocal, ModelID: modelID}, CanRunNow: true},
		res: router.ExecResult{
			Text:    text,
			Outcome: models.OutcomeOK,
		},
		attempts: []models.Attempt{{
			Plan:    models.Plan{Tier: models.TierLocal, ModelID: modelID},
			Outcome: models.OutcomeOK,
		}},
	}
}

func testRequest(chat string) *models.Request {
	return &models.Request{
		ID:     "req-1",
		ChatID: models.ChatID(chat),
		Event:  textEvent(chat, "m1"),
		Context: models.Context{
			Profile: models.ProfileChat,
			Policy:  models.PolicySnapshot{},
		},
		Deadline: time.Now().Add(30 * time.Second),
	}
}

func TestExecutorSendsExactlyOneReply(t *testing.T) {
	planner := okPlanner("the answer", "qwen-7b")
	sender := &fakeSender{}
	replies := NewReplyIndex()
	ledger := &countingLedger{}
	e := NewExecutor(planner, sender, nil, replies, ledger, nil, nil)

	e.Run(context.Background(), testRequest("c1"))

	require.Equal(t, []string{"the answer"}, sender.messages())
	assert.Len(t, ledger.attempts, 1)

	src, ok := replies.Lookup("c1", "reply-1")
	require.True(t, ok)
	assert.Equal(t, "qwen-7b", src.ModelID)
	assert.Equal(t, models.ProfileChat, src.Profile)
}

func TestExecutorSubstitutesFallbackText(t *testing.T) {
	planner := okPlanner("", "qwen-7b")
	planner.res = router.ExecResult{Outcome: models.OutcomeFatal, Code: models.CodeUpstream5xx}
	sender := &fakeSender{}
	e := NewExecutor(planner, sender, nil, nil, nil, nil, nil)

	e.Run(context.Background(), testRequest("c1"))

	msgs := sender.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, stream.FallbackText(models.CodeUpstream5xx), msgs[0])
}

func TestExecutorFailedReplyIsNotScorable(t *testing.T) {
	planner := okPlanner("", "qwen-7b")
	planner.res = router.ExecResult{Outcome: models.OutcomeTimeout, Code: models.CodeUpstreamTimeout}
	sender := &fakeSender{}
	replies := NewReplyIndex()
	e := NewExecutor(planner, sender, nil, replies, nil, nil, nil)

	e.Run(context.Background(), testRequest("c1"))

	_, ok := replies.Lookup("c1", "reply-1")
	assert.False(t, ok)
}

func TestExecutorHoldsExpensiveRequest(t *testing.T) {
	planner := okPlanner("pricey answer", "claude-opus")
	planner.pf.RequiresConfirm = true
	planner.pf.Plan = &models.Plan{Tier: models.TierCloudPaid, ModelID: "claude-opus", ConfirmRequired: true}
	planner.pf.MarginalCallCostUSD = 0.12
	sender := &fakeSender{}
	gate := NewConfirmGate(nil)
	e := NewExecutor(planner, sender, gate, nil, nil, nil, nil)

	req := testRequest("c1")
	e.Run(context.Background(), req)

	assert.Zero(t, planner.executed, "held request must not execute")
	msgs := sender.messages()
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "claude-opus")
	assert.Contains(t, msgs[0], "yes")
	assert.True(t, gate.Pending("c1"))

	held, ok := gate.TryGrant("c1", "Yes")
	require.True(t, ok)
	assert.Equal(t, req.ID, held.ID)
	assert.False(t, gate.Pending("c1"))
}

func TestConfirmGateIgnoresNonGrantText(t *testing.T) {
	gate := NewConfirmGate(nil)
	gate.Hold(testRequest("c1"))

	_, ok := gate.TryGrant("c1", "maybe later")
	assert.False(t, ok)
	assert.True(t, gate.Pending("c1"), "hold survives a non-grant message")

	_, ok = gate.TryGrant("c2", "yes")
	assert.False(t, ok, "grant in another chat releases nothing")
}

func TestConfirmGateExpires(t *testing.T) {
	now := time.Now()
	gate := NewConfirmGate(func() time.Time { return now })
	gate.Hold(testRequest("c1"))

	now = now.Add(61 * time.Second)
	_, ok := gate.TryGrant("c1", "yes")
	assert.False(t, ok)
	assert.False(t, gate.Pending("c1"))
}

func TestConfirmGateNewerRequestReplacesOlder(t *testing.T) {
	gate := NewConfirmGate(nil)
	first := testRequest("c1")
	second := testRequest("c1")
	second.ID = "req-2"

	gate.Hold(first)
	gate.Hold(second)

	held, ok := gate.TryGrant("c1", "yes")
	require.True(t, ok)
	assert.Equal(t, "req-2", held.ID)
}

func TestReplyIndexEvictsOldest(t *testing.T) {
	x := NewReplyIndex()
	for i := 0; i < repliesPerChat+1; i++ {
		x.Note("c1", fmt.Sprintf("m%d", i), ReplySource{ModelID: "qwen-7b"})
	}

	_, ok := x.Lookup("c1", "m0")
	assert.False(t, ok)
	_, ok = x.Lookup("c1", fmt.Sprintf("m%d", repliesPerChat))
	assert.True(t, ok)
}
