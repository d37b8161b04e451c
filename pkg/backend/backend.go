// Package backend defines the capability surface of a model backend and the
// OpenAI-compatible client that implements it for both local and cloud
// providers.
package backend

import (
	"context"

	"github.com/Pavua/krab/pkg/models"
)

// ChunkKind discriminates stream chunk payloads.
type ChunkKind string

const (
	ChunkContent   ChunkKind = "content"
	ChunkReasoning ChunkKind = "reasoning"
	ChunkTool      ChunkKind = "tool"
	ChunkDone      ChunkKind = "done"
	ChunkError     ChunkKind = "error"
)

// Chunk is a single unit of streamed model output. A stream ends with exactly
// one done or error chunk; the channel is closed after the terminal chunk.
type Chunk struct {
	Kind ChunkKind
	Text string

	// Set on error chunks only.
	Err  error
	Code models.ErrorCode

	// Set on the done chunk when the provider reports usage.
	TokensIn  int64
	TokensOut int64
}

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    string // system, user, assistant
	Content string
}

// ChatRequest carries everything a backend needs to produce a completion.
type ChatRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	StopTokens  []string
	Temperature float64
}

// Backend is the minimal capability surface every model provider implements.
// Implementations must be safe for concurrent use.
type Backend interface {
	// ID returns the backend identifier from configuration.
	ID() string

	// Tier returns the pricing tier this backend belongs to.
	Tier() models.Tier

	// Models lists the model identifiers currently available.
	Models(ctx context.Context) ([]string, error)

	// ChatStream starts a streaming completion. The returned channel yields
	// content, reasoning and tool chunks and is closed after a terminal done
	// or error chunk. Cancelling ctx aborts the stream.
	ChatStream(ctx context.Context, req ChatRequest) (<-chan Chunk, error)

	// Probe performs a lightweight liveness check.
	Probe(ctx context.Context) error
}

// ModelLoader is implemented by local backends that can (re)load a model
// into memory. The health supervisor uses it for soft-heal.
type ModelLoader interface {
	LoadModel(ctx context.Context, modelID string) error
}
