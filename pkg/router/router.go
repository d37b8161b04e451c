// Package router decides where a request runs and drives its attempts:
// local first, a single cloud fallback, candidate ordering inside the cloud
// tier and the free-to-paid autoswitch.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Pavua/krab/pkg/backend"
	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
	"github.com/Pavua/krab/pkg/stream"
)

// HealthView exposes the supervisor's current snapshot to routing.
type HealthView interface {
	Snapshot() models.HealthSnapshot
}

// FeedbackView exposes per-profile model feedback scores.
type FeedbackView interface {
	Score(profile models.TaskProfile, modelID string) float64
}

// BudgetView exposes the usage counters the soft caps are computed from.
type BudgetView interface {
	FreeCallsToday() int
	PaidSpendMonthUSD() float64
}

// AlertSink receives routing alerts. Deduplication happens downstream.
type AlertSink interface {
	Raise(code string, severity string, message string)
}

// Options wires a Router.
type Options struct {
	Routing    *config.RoutingConfig
	Guardrails *config.GuardrailConfig
	Registry   *backend.Registry
	Collector  *stream.Collector
	State      *CloudTierState
	Health     HealthView
	Feedback   FeedbackView
	Budget     BudgetView
	Alerts     AlertSink
	Logger     *slog.Logger
	Now        func() time.Time
}

// Router owns tier selection and attempt execution for requests.
type Router struct {
	cfg        *config.RoutingConfig
	guardrails *config.GuardrailConfig
	registry   *backend.Registry
	collector  *stream.Collector
	state      *CloudTierState
	health     HealthView
	feedback   FeedbackView
	budget     BudgetView
	alerts     AlertSink
	logger     *slog.Logger
	now        func() time.Time

	mu        sync.Mutex
	fallbacks []time.Time
	stormed   bool
}

// New builds a Router.
func New(opts Options) *Router {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	state := opts.State
	if state == nil {
		state = NewCloudTierState(opts.Routing, now)
	}
	return &Router{
		cfg:        opts.Routing,
		guardrails: opts.Guardrails,
		registry:   opts.Registry,
		collector:  opts.Collector,
		state:      state,
		health:     opts.Health,
		feedback:   opts.Feedback,
		budget:     opts.Budget,
		alerts:     opts.Alerts,
		logger:     logger.With("component", "router"),
		now:        now,
	}
}

// State exposes the cloud tier state for owner commands and the control API.
func (r *Router) State() *CloudTierState { return r.state }

// ExecResult is the terminal product of executing one request.
type ExecResult struct {
	Text    string
	Outcome models.Outcome
	Code    models.ErrorCode
}

// Execute runs the request to a terminal outcome: at most one local attempt
// plus one cloud fallback of up to NCloudCandidates attempts. Every attempt
// is appended to req.Attempts.
func (r *Router) Execute(ctx context.Context, req *models.Request, pf models.Preflight) ExecResult {
	if pf.Blocked || pf.Plan == nil {
		return ExecResult{Outcome: models.OutcomeFatal, Code: models.CodeBadRequest,
			Text: stream.FallbackText(models.CodeBadRequest)}
	}

	if pf.Plan.Tier == models.TierLocal {
		res := r.runCandidateAttempt(ctx, req, r.localCandidate(), "initial")
		if res.Outcome == models.OutcomeOK {
			return ExecResult{Text: res.Text, Outcome: models.OutcomeOK}
		}
		// SLA expiry is a cancellation: the request is out of time, so a
		// cloud retry would only burn quota on a reply nobody receives.
		if res.Outcome.Terminal() || res.Code == models.CodeSLATimeout ||
			req.Context.Policy.ForceMode == models.ForceLocal {
			return failed(res)
		}
		// One local-to-cloud fallback, ever. The fallback leg gets one
		// attempt fewer than a cloud-first request so the request stays
		// within two attempts total.
		r.noteFallback()
		return r.cloudPhase(ctx, req, "local_failed_cloud_fallback", r.fallbackBudget())
	}

	return r.cloudPhase(ctx, req, "initial", r.cfg.NCloudCandidates)
}

// fallbackBudget is the cloud attempt allowance after a failed local attempt.
func (r *Router) fallbackBudget() int {
	budget := r.cfg.NCloudCandidates - 1
	if budget < 1 {
		budget = 1
	}
	return budget
}

// cloudPhase tries cloud candidates in order, up to budget attempts total
// across the free-to-paid autoswitch.
func (r *Router) cloudPhase(ctx context.Context, req *models.Request, reason string, budget int) ExecResult {
	tier := r.state.CloudTier()
	var last stream.Result
	last.Outcome = models.OutcomeFatal
	last.Code = models.CodeUpstreamUnreachable

	attempts := 0
	for attempts < budget {
		cands := r.candidates(tier, req.Context.Profile)
		if len(cands) == 0 {
			break
		}
		switched := false
		for _, cand := range cands {
			if attempts >= budget {
				break
			}
			res := r.runCandidateAttempt(ctx, req, &cand, reason)
			attempts++
			last = res

			if res.Outcome == models.OutcomeOK {
				return ExecResult{Text: res.Text, Outcome: models.OutcomeOK}
			}
			if res.Outcome == models.OutcomeCancelled || res.Outcome == models.OutcomeLoop {
				return failed(res)
			}
			if res.Code == models.CodeSLATimeout {
				return failed(res)
			}
			if res.Code == models.CodeQuotaExhausted && tier == models.TierCloudFree {
				if r.state.NoteFreeExhausted() {
					r.logger.Info("autoswitched to paid tier", "request_id", req.ID)
					tier = models.TierCloudPaid
					reason = "free_quota_exhausted"
					switched = true
					break
				}
			}
			if res.Code.Fatal() {
				return failed(res)
			}
		}
		if !switched {
			break
		}
	}
	return failed(last)
}

func failed(res stream.Result) ExecResult {
	code := res.Code
	if code == "" {
		code = models.CodeUpstream5xx
	}
	// Loop aborts may salvage the first clean paragraph; the terminal
	// message is then that paragraph plus the short notice.
	text := stream.FallbackText(code)
	if res.Text != "" {
		text = res.Text + "\n\n" + text
	}
	return ExecResult{
		Text:    text,
		Outcome: res.Outcome,
		Code:    code,
	}
}

// localCandidate returns the preferred local (backend, model) pair.
func (r *Router) localCandidate() *Candidate {
	cands := r.candidates(models.TierLocal, models.ProfileChat)
	if len(cands) == 0 {
		return nil
	}
	return &cands[0]
}

// runCandidateAttempt streams one completion against a candidate and records
// the attempt on the request.
func (r *Router) runCandidateAttempt(ctx context.Context, req *models.Request, cand *Candidate, routeReason string) stream.Result {
	if cand == nil {
		return stream.Result{Outcome: models.OutcomeTransient, Code: models.CodeLocalUnavailable}
	}
	b, ok := r.registry.Get(cand.BackendID)
	if !ok {
		return stream.Result{Outcome: models.OutcomeTransient, Code: models.CodeLocalUnavailable}
	}

	policy := req.Context.Policy
	maxTokens := policy.MaxOutputChars / 3
	if maxTokens < minAttemptTokens {
		maxTokens = minAttemptTokens
	}
	if maxTokens > maxAttemptTokens {
		maxTokens = maxAttemptTokens
	}
	plan := models.Plan{
		Tier:            cand.Tier,
		ModelID:         cand.ModelID,
		MaxTokens:       maxTokens,
		ReasoningCap:    r.guardrails.ReasoningCapChars,
		CostEstimateUSD: cand.CostPer1KTokensUSD * float64(maxTokens) / 1000,
	}

	messages := buildMessages(req)
	bytesIn := 0
	for _, m := range messages {
		bytesIn += len(m.Content)
	}

	started := r.now()
	chunks, err := b.ChatStream(ctx, backend.ChatRequest{
		Model:     cand.ModelID,
		Messages:  messages,
		MaxTokens: maxTokens,
	})

	var res stream.Result
	if err != nil {
		code := backend.Classify(err, cand.Tier, nil)
		res = stream.Result{Outcome: outcomeForCode(code), Code: code}
	} else {
		res = r.collector.Collect(ctx, chunks, policy.MaxOutputChars)
	}

	req.Attempts = append(req.Attempts, models.Attempt{
		Plan:        plan,
		StartedAt:   started,
		EndedAt:     r.now(),
		Outcome:     res.Outcome,
		BytesIn:     bytesIn,
		BytesOut:    res.BytesOut,
		ErrorCode:   res.Code,
		RouteReason: routeReason,
	})

	r.logger.Info("attempt finished",
		"request_id", req.ID,
		"chat_id", string(req.ChatID),
		"tier", string(cand.Tier),
		"model", cand.ModelID,
		"outcome", string(res.Outcome),
		"error_code", string(res.Code),
		"route_reason", routeReason,
		"duration_ms", r.now().Sub(started).Milliseconds())

	return res
}

func outcomeForCode(code models.ErrorCode) models.Outcome {
	switch {
	case code == models.CodeCancelled:
		return models.OutcomeCancelled
	case code == models.CodeUpstreamTimeout || code == models.CodeSLATimeout:
		return models.OutcomeTimeout
	case code.Fatal():
		return models.OutcomeFatal
	case code.Transient():
		return models.OutcomeTransient
	default:
		return models.OutcomeFatal
	}
}

// buildMessages renders the conversation for a backend from the request
// context: persona and mood as the system turn, attribution folded into the
// user turn.
func buildMessages(req *models.Request) []backend.Message {
	system := req.Context.Persona
	if tone := req.Context.Mood.Tone; tone != "" && tone != models.ToneNeutral {
		system += fmt.Sprintf("\nThe chat mood is currently %s. Match your tone to it.", tone)
	}

	user := req.Event.Payload
	if req.Context.ReplyToAuthor != "" {
		user = fmt.Sprintf("[replying to %s] %s", req.Context.ReplyToAuthor, user)
	}
	if req.Context.ForwardFrom != "" {
		user = fmt.Sprintf("[forwarded from %s] %s", req.Context.ForwardFrom, user)
	}
	if req.Event.IsGroup && req.Context.Author != "" {
		user = fmt.Sprintf("%s: %s", req.Context.Author, user)
	}

	msgs := make([]backend.Message, 0, 2)
	if system != "" {
		msgs = append(msgs, backend.Message{Role: "system", Content: system})
	}
	msgs = append(msgs, backend.Message{Role: "user", Content: user})
	return msgs
}

// noteFallback records a local-to-cloud fallback and raises the storm alert
// when the window fills up.
func (r *Router) noteFallback() {
	now := r.now()
	r.mu.Lock()
	r.pruneFallbacksLocked(now)
	r.fallbacks = append(r.fallbacks, now)
	count := len(r.fallbacks)
	raise := count > r.cfg.FallbackStormThreshold && !r.stormed
	if raise {
		r.stormed = true
	}
	r.mu.Unlock()

	if raise && r.alerts != nil {
		r.alerts.Raise("cloud_fallback_storm", "warn",
			fmt.Sprintf("%d local-to-cloud fallbacks within %s", count, r.cfg.FallbackStormWindow))
	}
}

// stormActive reports whether local routing is suspended because fallbacks
// keep happening.
func (r *Router) stormActive() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruneFallbacksLocked(r.now())
	active := len(r.fallbacks) > r.cfg.FallbackStormThreshold
	if !active {
		r.stormed = false
	}
	return active
}

func (r *Router) pruneFallbacksLocked(now time.Time) {
	cutoff := now.Add(-r.cfg.FallbackStormWindow)
	kept := r.fallbacks[:0]
	for _, t := range r.fallbacks {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	r.fallbacks = kept
}
