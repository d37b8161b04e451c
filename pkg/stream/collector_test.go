package stream

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
)

func newTestCollector(t *testing.T, mutate func(*config.GuardrailConfig)) *Collector {
	t.Helper()
	cfg := config.DefaultGuardrailConfig()
	if mutate != nil {
		mutate(cfg)
	}
	c, err := NewCollector(cfg, nil)
	require.NoError(t, err)
	return c
}

func feed(chunks ...backend.Chunk) <-chan backend.Chunk {
	ch := make(chan backend.Chunk, len(chunks))
	for _, c := range chunks {
		ch <- c
	}
	close(ch)
	return ch
}

func TestCollectCleanStream(t *testing.T) {
	c := newTestCollector(t, nil)

	res := c.Collect(context.Background(), feed(
		backend.Chunk{Kind: backend.ChunkReasoning, Text: "thinking about it"},
		backend.Chunk{Kind: backend.ChunkContent, Text: "Hello, "},
		backend.Chunk{Kind: backend.ChunkContent, Text: "world."},
		backend.Chunk{Kind: backend.ChunkDone, TokensIn: 12, TokensOut: 4},
	), 4000)

	assert.Equal(t, models.OutcomeOK, res.Outcome)
	assert.Equal(t, "Hello, world.", res.Text)
	assert.Equal(t, len("thinking about it"), res.ReasoningChars)
	assert.Equal(t, int64(12), res.TokensIn)
	assert.Equal(t, int64(4), res.TokensOut)
}

func TestCollectIdleTimeout(t *testing.T) {
	c := newTestCollector(t, func(cfg *config.GuardrailConfig) {
		cfg.IdleChunk = 30 * time.Millisecond
	})

	ch := make(chan backend.Chunk)
	defer close(ch)

	res := c.Collect(context.Background(), ch, 4000)

	assert.Equal(t, models.OutcomeTimeout, res.Outcome)
	assert.Equal(t, models.CodeUpstreamTimeout, res.Code)
}

func TestCollectReasoningCap(t *testing.T) {
	c := newTestCollector(t, func(cfg *config.GuardrailConfig) {
		cfg.ReasoningCapChars = 50
	})

	res := c.Collect(context.Background(), feed(
		backend.Chunk{Kind: backend.ChunkReasoning, Text: strings.Repeat("x", 60)},
	), 4000)

	assert.Equal(t, models.OutcomeLoop, res.Outcome)
	assert.Equal(t, models.CodeReasoningLimit, res.Code)
	assert.Equal(t, 60, res.ReasoningChars)
}

func TestCollectParagraphLoop(t *testing.T) {
	c := newTestCollector(t, nil)

	para := "I will now repeat myself without end.\n\n"
	res := c.Collect(context.Background(), feed(
		backend.Chunk{Kind: backend.ChunkContent, Text: strings.Repeat(para, 4)},
	), 4000)

	assert.Equal(t, models.OutcomeLoop, res.Outcome)
	assert.Equal(t, models.CodeLoopDetected, res.Code)
}

func TestCollectLoopAbortKeepsFirstParagraph(t *testing.T) {
	c := newTestCollector(t, nil)

	para := "I will now repeat myself without end.\n\n"
	res := c.Collect(context.Background(), feed(
		backend.Chunk{Kind: backend.ChunkContent, Text: "The short answer is: yes.<|im_end|>\n\n" + strings.Repeat(para, 4)},
	), 4000)

	assert.Equal(t, models.OutcomeLoop, res.Outcome)
	assert.Equal(t, models.CodeLoopDetected, res.Code)
	assert.Equal(t, "The short answer is: yes.", res.Text)
}

func TestCollectReasoningCapKeepsContentSoFar(t *testing.T) {
	c := newTestCollector(t, func(cfg *config.GuardrailConfig) {
		cfg.ReasoningCapChars = 50
	})

	res := c.Collect(context.Background(), feed(
		backend.Chunk{Kind: backend.ChunkContent, Text: "Started answering here."},
		backend.Chunk{Kind: backend.ChunkReasoning, Text: strings.Repeat("x", 60)},
	), 4000)

	assert.Equal(t, models.OutcomeLoop, res.Outcome)
	assert.Equal(t, models.CodeReasoningLimit, res.Code)
	assert.Equal(t, "Started answering here.", res.Text)
}

func TestCollectTailRepetition(t *testing.T) {
	c := newTestCollector(t, nil)

	res := c.Collect(context.Background(), feed(
		backend.Chunk{Kind: backend.ChunkContent, Text: "answer: " + strings.Repeat("the same thing ", 6)},
	), 4000)

	assert.Equal(t, models.OutcomeLoop, res.Outcome)
}

func TestCollectCrashSentinel(t *testing.T) {
	c := newTestCollector(t, nil)

	res := c.Collect(context.Background(), feed(
		backend.Chunk{Kind: backend.ChunkContent, Text: "partial answer... The model has crashed"},
	), 4000)

	assert.Equal(t, models.OutcomeTransient, res.Outcome)
	assert.Equal(t, models.CodeLocalCrashed, res.Code)
	assert.Contains(t, res.SentinelHits, "model_crashed")
}

func TestCollectSentinelScrubbed(t *testing.T) {
	c := newTestCollector(t, nil)

	res := c.Collect(context.Background(), feed(
		backend.Chunk{Kind: backend.ChunkContent, Text: "Here you go.<|im_end|>"},
		backend.Chunk{Kind: backend.ChunkDone},
	), 4000)

	assert.Equal(t, models.OutcomeOK, res.Outcome)
	assert.Equal(t, "Here you go.", res.Text)
	assert.Contains(t, res.SentinelHits, "im_tags")
}

func TestCollectSentinelLeakOnlyMarkers(t *testing.T) {
	c := newTestCollector(t, nil)

	res := c.Collect(context.Background(), feed(
		backend.Chunk{Kind: backend.ChunkContent, Text: "<|im_start|><|im_end|>"},
		backend.Chunk{Kind: backend.ChunkDone},
	), 4000)

	assert.Equal(t, models.OutcomeTransient, res.Outcome)
	assert.Equal(t, models.CodeSentinelLeak, res.Code)
	assert.Empty(t, res.Text)
}

func TestCollectErrorChunk(t *testing.T) {
	c := newTestCollector(t, nil)

	res := c.Collect(context.Background(), feed(
		backend.Chunk{Kind: backend.ChunkError, Code: models.CodeUpstream5xx, Err: errors.New("boom")},
	), 4000)

	assert.Equal(t, models.OutcomeTransient, res.Outcome)
	assert.Equal(t, models.CodeUpstream5xx, res.Code)
}

func TestCollectFatalErrorChunk(t *testing.T) {
	c := newTestCollector(t, nil)

	res := c.Collect(context.Background(), feed(
		backend.Chunk{Kind: backend.ChunkError, Code: models.CodeAuthInvalid, Err: errors.New("401")},
	), 4000)

	assert.Equal(t, models.OutcomeFatal, res.Outcome)
}

func TestCollectContextCancelled(t *testing.T) {
	c := newTestCollector(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ch := make(chan backend.Chunk)
	defer close(ch)

	res := c.Collect(ctx, ch, 4000)

	assert.Equal(t, models.OutcomeCancelled, res.Outcome)
	assert.Equal(t, models.CodeCancelled, res.Code)
}

func TestCollectDeadlineMapsToSLATimeout(t *testing.T) {
	c := newTestCollector(t, nil)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	ch := make(chan backend.Chunk)
	defer close(ch)

	res := c.Collect(ctx, ch, 4000)

	assert.Equal(t, models.OutcomeTimeout, res.Outcome)
	assert.Equal(t, models.CodeSLATimeout, res.Code)
}

func TestFinalizeClosesFences(t *testing.T) {
	out, truncated := Finalize("look:\n```go\nfmt.Println(1)", 4000)

	assert.False(t, truncated)
	assert.True(t, strings.HasSuffix(out, "```"))
	assert.Equal(t, 0, strings.Count(out, "```")%2)
}

func TestFinalizeTruncates(t *testing.T) {
	out, truncated := Finalize(strings.Repeat("long answer ", 100), 50)

	assert.True(t, truncated)
	assert.LessOrEqual(t, len([]rune(out)), 50)
	assert.True(t, strings.HasSuffix(out, "…"))
}

func TestFallbackTextNeverEmpty(t *testing.T) {
	assert.NotEmpty(t, FallbackText(models.CodeQueueFull))
	assert.NotEmpty(t, FallbackText(models.ErrorCode("unknown_code")))
}
