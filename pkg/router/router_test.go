package router

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavua/krab/pkg/backend"
	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
	"github.com/Pavua/krab/pkg/stream"
)

type fixture struct {
	router *Router
	local  *backend.Fake
	free   *backend.Fake
	paid   *backend.Fake
}

func newFixture(t *testing.T, mutate func(*config.RoutingConfig)) *fixture {
	t.Helper()

	local := backend.NewFake("lmstudio", models.TierLocal, "qwen-7b")
	free := backend.NewFake("openrouter", models.TierCloudFree, "glm-free")
	paid := backend.NewFake("anthropic", models.TierCloudPaid, "claude-haiku")

	registry := backend.NewRegistryFromBackends(
		map[string]backend.Backend{
			"lmstudio":   local,
			"openrouter": free,
			"anthropic":  paid,
		},
		map[string]config.BackendConfig{
			"lmstudio":   {ID: "lmstudio", Tier: models.TierLocal, Models: []string{"qwen-7b"}, Local: true},
			"openrouter": {ID: "openrouter", Tier: models.TierCloudFree, Models: []string{"glm-free"}},
			"anthropic":  {ID: "anthropic", Tier: models.TierCloudPaid, Models: []string{"claude-haiku"}, CostPer1KTokensUSD: 0.01},
		},
	)

	routing := config.DefaultRoutingConfig()
	if mutate != nil {
		mutate(routing)
	}
	guardrails := config.DefaultGuardrailConfig()
	collector, err := stream.NewCollector(guardrails, nil)
	require.NoError(t, err)

	r := New(Options{
		Routing:    routing,
		Guardrails: guardrails,
		Registry:   registry,
		Collector:  collector,
	})
	return &fixture{router: r, local: local, free: free, paid: paid}
}

func newRequest(mode models.ForceMode) *models.Request {
	return &models.Request{
		ID:     "req-1",
		ChatID: "chat-1",
		Event:  models.Event{ChatID: "chat-1", MessageID: "m1", Kind: models.EventKindText, Payload: "hello"},
		Context: models.Context{
			Author:  "alice",
			Profile: models.ProfileChat,
			Policy: models.PolicySnapshot{
				Policy: models.Policy{
					ForceMode:      mode,
					ReplyEnabled:   true,
					MaxOutputChars: 4000,
				},
			},
		},
	}
}

func TestExecuteLocalSuccess(t *testing.T) {
	f := newFixture(t, nil)
	f.local.ScriptText("hi there")

	req := newRequest(models.ForceAuto)
	pf := f.router.Preflight(req)
	require.True(t, pf.CanRunNow)
	require.Equal(t, models.TierLocal, pf.Plan.Tier)

	res := f.router.Execute(context.Background(), req, pf)

	assert.Equal(t, models.OutcomeOK, res.Outcome)
	assert.Equal(t, "hi there", res.Text)
	require.Len(t, req.Attempts, 1)
	assert.Equal(t, models.TierLocal, req.Attempts[0].Plan.Tier)
	assert.Zero(t, f.free.Calls())
	assert.Zero(t, f.paid.Calls())
}

func TestExecuteLocalTransientFallsBackToCloudOnce(t *testing.T) {
	f := newFixture(t, nil)
	f.local.ScriptError(models.CodeLocalCrashed, errors.New("crash"))
	f.free.ScriptText("cloud answer")

	req := newRequest(models.ForceAuto)
	pf := f.router.Preflight(req)
	res := f.router.Execute(context.Background(), req, pf)

	assert.Equal(t, models.OutcomeOK, res.Outcome)
	assert.Equal(t, "cloud answer", res.Text)
	require.Len(t, req.Attempts, 2)
	assert.Equal(t, models.TierLocal, req.Attempts[0].Plan.Tier)
	assert.Equal(t, models.TierCloudFree, req.Attempts[1].Plan.Tier)
	assert.Equal(t, "local_failed_cloud_fallback", req.Attempts[1].RouteReason)
	assert.Equal(t, 1, f.local.Calls())
}

func TestExecuteSLATimeoutIsNotRetried(t *testing.T) {
	f := newFixture(t, nil)
	f.local.ScriptError(models.CodeSLATimeout, errors.New("deadline"))

	req := newRequest(models.ForceAuto)
	pf := f.router.Preflight(req)
	res := f.router.Execute(context.Background(), req, pf)

	assert.Equal(t, models.OutcomeTimeout, res.Outcome)
	assert.Equal(t, models.CodeSLATimeout, res.Code)
	assert.Equal(t, stream.FallbackText(models.CodeSLATimeout), res.Text)
	require.Len(t, req.Attempts, 1)
	assert.Zero(t, f.free.Calls(), "an out-of-time request must not burn cloud quota")
	assert.Zero(t, f.paid.Calls())
}

func TestExecuteFallbackStaysWithinTwoAttempts(t *testing.T) {
	f := newFixture(t, nil)
	f.local.ScriptError(models.CodeLocalCrashed, errors.New("crash"))
	f.free.ScriptError(models.CodeQuotaExhausted, errors.New("429"))
	f.paid.ScriptText("never reached")

	req := newRequest(models.ForceAuto)
	pf := f.router.Preflight(req)
	res := f.router.Execute(context.Background(), req, pf)

	assert.NotEqual(t, models.OutcomeOK, res.Outcome)
	assert.Equal(t, models.CodeQuotaExhausted, res.Code)
	require.Len(t, req.Attempts, 2)
	assert.Zero(t, f.paid.Calls(), "the fallback leg gets one cloud attempt only")
}

func TestExecuteForceLocalNeverFallsBack(t *testing.T) {
	f := newFixture(t, nil)
	f.local.ScriptError(models.CodeLocalUnavailable, errors.New("refused"))

	req := newRequest(models.ForceLocal)
	pf := f.router.Preflight(req)
	res := f.router.Execute(context.Background(), req, pf)

	assert.NotEqual(t, models.OutcomeOK, res.Outcome)
	assert.Equal(t, models.CodeLocalUnavailable, res.Code)
	assert.Zero(t, f.free.Calls())
	assert.Zero(t, f.paid.Calls())
	assert.NotEmpty(t, res.Text)
}

func TestExecuteLocalLoopIsTerminal(t *testing.T) {
	f := newFixture(t, nil)
	f.local.Script(
		backend.Chunk{Kind: backend.ChunkReasoning, Text: "abcdefgh" + "abcdefgh" + "abcdefgh"},
	)

	req := newRequest(models.ForceAuto)
	pf := f.router.Preflight(req)
	res := f.router.Execute(context.Background(), req, pf)

	assert.Equal(t, models.OutcomeLoop, res.Outcome)
	assert.Zero(t, f.free.Calls(), "loop outcomes must not trigger cloud fallback")
}

func TestExecuteLoopAbortKeepsFirstParagraph(t *testing.T) {
	f := newFixture(t, nil)
	para := "The same sentence over and over again.\n\n"
	f.local.Script(
		backend.Chunk{Kind: backend.ChunkContent, Text: "Here is the useful part.\n\n" + strings.Repeat(para, 4)},
	)

	req := newRequest(models.ForceAuto)
	pf := f.router.Preflight(req)
	res := f.router.Execute(context.Background(), req, pf)

	assert.Equal(t, models.OutcomeLoop, res.Outcome)
	assert.Equal(t, models.CodeLoopDetected, res.Code)
	assert.Contains(t, res.Text, "Here is the useful part.")
	assert.Contains(t, res.Text, stream.FallbackText(models.CodeLoopDetected))
	assert.Zero(t, f.free.Calls())
}

func TestExecuteFreeQuotaAutoswitchesToPaid(t *testing.T) {
	f := newFixture(t, nil)
	f.free.ScriptError(models.CodeQuotaExhausted, errors.New("429"))
	f.paid.ScriptText("paid answer")

	req := newRequest(models.ForceCloud)
	pf := f.router.Preflight(req)
	require.Equal(t, models.TierCloudFree, pf.Plan.Tier)

	res := f.router.Execute(context.Background(), req, pf)

	assert.Equal(t, models.OutcomeOK, res.Outcome)
	assert.Equal(t, "paid answer", res.Text)
	require.Len(t, req.Attempts, 2)
	assert.Equal(t, models.TierCloudPaid, req.Attempts[1].Plan.Tier)
	assert.Equal(t, "free_quota_exhausted", req.Attempts[1].RouteReason)
	assert.True(t, f.router.State().OnPaid())
}

func TestExecuteCloudAttemptsCapped(t *testing.T) {
	f := newFixture(t, nil)
	f.free.ScriptError(models.CodeUpstream5xx, errors.New("500"))
	f.free.ScriptError(models.CodeUpstream5xx, errors.New("500"))
	f.paid.ScriptText("never reached")

	req := newRequest(models.ForceCloud)
	pf := f.router.Preflight(req)
	res := f.router.Execute(context.Background(), req, pf)

	assert.NotEqual(t, models.OutcomeOK, res.Outcome)
	total := 0
	for _, a := range req.Attempts {
		if a.Plan.Tier.IsCloud() {
			total++
		}
	}
	assert.LessOrEqual(t, total, config.DefaultRoutingConfig().NCloudCandidates)
}

func TestExecuteFatalStopsImmediately(t *testing.T) {
	f := newFixture(t, nil)
	f.free.ScriptError(models.CodeAuthInvalid, errors.New("401"))

	req := newRequest(models.ForceCloud)
	pf := f.router.Preflight(req)
	res := f.router.Execute(context.Background(), req, pf)

	assert.Equal(t, models.OutcomeFatal, res.Outcome)
	assert.Equal(t, models.CodeAuthInvalid, res.Code)
	assert.Zero(t, f.paid.Calls())
}

func TestPreflightConfirmExpensiveGate(t *testing.T) {
	f := newFixture(t, nil)
	f.router.State().NoteFreeExhausted()

	req := newRequest(models.ForceCloud)
	req.Context.Profile = models.ProfileSecurity
	req.Context.ConfirmExpensive = true

	pf := f.router.Preflight(req)

	require.NotNil(t, pf.Plan)
	assert.Equal(t, models.TierCloudPaid, pf.Plan.Tier)
	assert.True(t, pf.RequiresConfirm)
	assert.False(t, pf.CanRunNow)
}

func TestPreflightReasonsExplainRoute(t *testing.T) {
	f := newFixture(t, nil)

	req := newRequest(models.ForceLocal)
	pf := f.router.Preflight(req)

	assert.Contains(t, pf.Reasons, "force_mode=local")
	assert.NotNil(t, pf.Plan)
}

type sinkAlert struct {
	codes []string
}

func (s *sinkAlert) Raise(code, severity, message string) { s.codes = append(s.codes, code) }

func TestFallbackStormRaisesAlertAndPrefersCloud(t *testing.T) {
	f := newFixture(t, func(cfg *config.RoutingConfig) {
		cfg.FallbackStormThreshold = 2
		cfg.FallbackStormWindow = time.Minute
	})
	sink := &sinkAlert{}
	f.router.alerts = sink

	for i := 0; i < 3; i++ {
		f.router.noteFallback()
	}

	assert.Contains(t, sink.codes, "cloud_fallback_storm")
	assert.True(t, f.router.stormActive())

	req := newRequest(models.ForceAuto)
	pf := f.router.Preflight(req)
	assert.True(t, pf.Plan.Tier.IsCloud(), "storm should route cloud-first")
}
