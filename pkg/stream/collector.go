// Package stream assembles model output from chunk streams and enforces the
// runtime guardrails: reasoning caps, loop detection, sentinel scrubbing and
// idle timeouts.
package stream

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Pavua/krab/pkg/backend"
	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
)

// crashCheckWindow bounds how much accumulated content is rescanned for
// crash sentinels on each chunk. Sentinels can split across chunk
// boundaries, so scanning only the new chunk is not enough.
const crashCheckWindow = 512

// Result is the terminal outcome of collecting one stream.
type Result struct {
	Text           string
	Outcome        models.Outcome
	Code           models.ErrorCode
	ReasoningChars int
	BytesOut       int
	TokensIn       int64
	TokensOut      int64
	Truncated      bool
	SentinelHits   []string
}

// Collector drains backend chunk channels into guarded Results. Safe for
// concurrent use; all state lives per Collect call.
type Collector struct {
	cfg      *config.GuardrailConfig
	scrubber *Scrubber
	logger   *slog.Logger
}

// NewCollector compiles the sentinel set and returns a collector.
func NewCollector(cfg *config.GuardrailConfig, logger *slog.Logger) (*Collector, error) {
	scrubber, err := NewScrubber(cfg.Sentinels)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{cfg: cfg, scrubber: scrubber, logger: logger}, nil
}

// Collect drains the chunk channel until a terminal condition: clean done,
// error chunk, guardrail trip, idle timeout or context cancellation. It
// always returns a Result with a set Outcome.
func (c *Collector) Collect(ctx context.Context, chunks <-chan backend.Chunk, maxOutputChars int) Result {
	var content, reasoning strings.Builder

	idle := time.NewTimer(c.cfg.IdleChunk)
	defer idle.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return Result{Outcome: models.OutcomeTimeout, Code: models.CodeSLATimeout,
					ReasoningChars: reasoning.Len(), BytesOut: content.Len()}
			}
			return Result{Outcome: models.OutcomeCancelled, Code: models.CodeCancelled,
				ReasoningChars: reasoning.Len(), BytesOut: content.Len()}

		case <-idle.C:
			c.logger.Warn("stream idle timeout",
				"idle", c.cfg.IdleChunk.String(),
				"bytes_so_far", content.Len())
			return Result{Outcome: models.OutcomeTimeout, Code: models.CodeUpstreamTimeout,
				ReasoningChars: reasoning.Len(), BytesOut: content.Len()}

		case ch, ok := <-chunks:
			if !ok {
				// Producer closed without a terminal chunk. Treat whatever
				// arrived as the full answer.
				return c.finish(content.String(), reasoning.Len(), 0, 0, maxOutputChars)
			}
			resetTimer(idle, c.cfg.IdleChunk)

			switch ch.Kind {
			case backend.ChunkReasoning:
				reasoning.WriteString(ch.Text)
				if reasoning.Len() > c.cfg.ReasoningCapChars {
					return Result{Outcome: models.OutcomeLoop, Code: models.CodeReasoningLimit,
						Text:           c.partial(content.String()),
						ReasoningChars: reasoning.Len(), BytesOut: content.Len()}
				}
				if tailRepetition(reasoning.String(), c.cfg.ReasoningLoopRepeats) {
					return Result{Outcome: models.OutcomeLoop, Code: models.CodeLoopDetected,
						Text:           c.partial(content.String()),
						ReasoningChars: reasoning.Len(), BytesOut: content.Len()}
				}

			case backend.ChunkContent:
				content.WriteString(ch.Text)
				if name, code, hit := c.scrubber.CrashSentinel(tail(content.String(), crashCheckWindow+len(ch.Text))); hit {
					c.logger.Warn("crash sentinel in stream", "sentinel", name)
					return Result{Outcome: models.OutcomeTransient, Code: code,
						ReasoningChars: reasoning.Len(), BytesOut: content.Len(),
						SentinelHits: []string{name}}
				}
				if paragraphLoop(content.String(), c.cfg.ContentLoopRepeats) ||
					tailRepetition(content.String(), c.cfg.ContentLoopRepeats) {
					return Result{Outcome: models.OutcomeLoop, Code: models.CodeLoopDetected,
						Text:           c.partial(content.String()),
						ReasoningChars: reasoning.Len(), BytesOut: content.Len()}
				}

			case backend.ChunkTool:
				// Tool call frames never reach chat surfaces.

			case backend.ChunkError:
				return Result{Outcome: outcomeFor(ch.Code), Code: ch.Code,
					ReasoningChars: reasoning.Len(), BytesOut: content.Len()}

			case backend.ChunkDone:
				return c.finish(content.String(), reasoning.Len(), ch.TokensIn, ch.TokensOut, maxOutputChars)
			}
		}
	}
}

// finish scrubs, post-processes and classifies a completed stream.
func (c *Collector) finish(raw string, reasoningChars int, tokensIn, tokensOut int64, maxOutputChars int) Result {
	scrubbed, hits := c.scrubber.Apply(raw)
	text, truncated := Finalize(scrubbed, maxOutputChars)

	if text == "" && len(hits) > 0 {
		c.logger.Warn("output was entirely sentinel markers", "sentinels", hits)
		return Result{Outcome: models.OutcomeTransient, Code: models.CodeSentinelLeak,
			ReasoningChars: reasoningChars, BytesOut: len(raw),
			TokensIn: tokensIn, TokensOut: tokensOut, SentinelHits: hits}
	}

	return Result{
		Text:           text,
		Outcome:        models.OutcomeOK,
		ReasoningChars: reasoningChars,
		BytesOut:       len(raw),
		TokensIn:       tokensIn,
		TokensOut:      tokensOut,
		Truncated:      truncated,
		SentinelHits:   hits,
	}
}

// partial salvages the first paragraph of content accumulated before a loop
// abort. Repetition shows up from the second paragraph on, so the first is
// still usable once scrubbed.
func (c *Collector) partial(raw string) string {
	scrubbed, _ := c.scrubber.Apply(raw)
	scrubbed = strings.TrimSpace(scrubbed)
	if i := strings.Index(scrubbed, "\n\n"); i >= 0 {
		scrubbed = scrubbed[:i]
	}
	text, _ := Finalize(scrubbed, 0)
	return text
}

func outcomeFor(code models.ErrorCode) models.Outcome {
	switch {
	case code == models.CodeCancelled:
		return models.OutcomeCancelled
	case code == models.CodeUpstreamTimeout || code == models.CodeSLATimeout:
		return models.OutcomeTimeout
	case code == models.CodeLoopDetected || code == models.CodeReasoningLimit:
		return models.OutcomeLoop
	case code.Fatal():
		return models.OutcomeFatal
	case code.Transient():
		return models.OutcomeTransient
	default:
		return models.OutcomeFatal
	}
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
