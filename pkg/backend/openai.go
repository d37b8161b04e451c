package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/respjson"

	"github.com/Pavua/krab/pkg/models"
)

// streamBuffer bounds the chunk channel so a slow consumer applies
// backpressure instead of growing memory.
const streamBuffer = 64

// OpenAIBackend talks to any OpenAI-compatible chat completions endpoint.
// Local runtimes (LM Studio, Ollama) and cloud providers all speak this
// dialect, so one client covers every tier.
type OpenAIBackend struct {
	id     string
	tier   models.Tier
	local  bool
	client openai.Client
	quota  QuotaClassifier
	logger *slog.Logger
}

// Options configures an OpenAI-compatible backend client.
type Options struct {
	ID      string
	Tier    models.Tier
	BaseURL string
	APIKey  string
	Local   bool
	Quota   QuotaClassifier
	Logger  *slog.Logger
}

// NewOpenAIBackend builds a backend client for the given endpoint.
func NewOpenAIBackend(opts Options) (*OpenAIBackend, error) {
	if opts.ID == "" {
		return nil, fmt.Errorf("backend id is required")
	}
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("backend %s: base url is required", opts.ID)
	}
	clientOpts := []option.RequestOption{option.WithBaseURL(opts.BaseURL)}
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	quota := opts.Quota
	if quota == nil {
		quota = DefaultQuotaClassifier{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenAIBackend{
		id:     opts.ID,
		tier:   opts.Tier,
		local:  opts.Local,
		client: openai.NewClient(clientOpts...),
		quota:  quota,
		logger: logger.With("backend_id", opts.ID, "tier", string(opts.Tier)),
	}, nil
}

func (b *OpenAIBackend) ID() string        { return b.id }
func (b *OpenAIBackend) Tier() models.Tier { return b.tier }

// Models lists model identifiers from the /models endpoint.
func (b *OpenAIBackend) Models(ctx context.Context) ([]string, error) {
	page, err := b.client.Models.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list models on %s: %w", b.id, err)
	}
	ids := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// Probe checks liveness with a bounded model listing.
func (b *OpenAIBackend) Probe(ctx context.Context) error {
	_, err := b.client.Models.List(ctx)
	if err != nil {
		return fmt.Errorf("probe %s: %w", b.id, err)
	}
	return nil
}

// LoadModel warms a model into memory on local runtimes by issuing a
// single-token completion. OpenAI-compatible local servers load lazily on
// first use, so this is the reload primitive for soft-heal.
func (b *OpenAIBackend) LoadModel(ctx context.Context, modelID string) error {
	if !b.local {
		return nil
	}
	_, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(modelID),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage("ok"),
		},
		MaxTokens: openai.Int(1),
	})
	if err != nil {
		return fmt.Errorf("load model %s on %s: %w", modelID, b.id, err)
	}
	return nil
}

// ChatStream starts a streaming completion and pumps typed chunks into the
// returned channel until the provider finishes or ctx is cancelled.
func (b *OpenAIBackend) ChatStream(ctx context.Context, req ChatRequest) (<-chan Chunk, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)),
		StreamOptions: openai.ChatCompletionStreamOptionsParam{
			IncludeUsage: openai.Bool(true),
		},
	}
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		case "assistant":
			params.Messages = append(params.Messages, openai.AssistantMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if len(req.StopTokens) > 0 {
		params.Stop = openai.ChatCompletionNewParamsStopUnion{OfStringArray: req.StopTokens}
	}

	stream := b.client.Chat.Completions.NewStreaming(ctx, params)

	out := make(chan Chunk, streamBuffer)
	go func() {
		defer close(out)
		defer func() { _ = stream.Close() }()

		started := time.Now()
		var tokensIn, tokensOut int64

		for stream.Next() {
			chunk := stream.Current()
			if chunk.Usage.CompletionTokens > 0 || chunk.Usage.PromptTokens > 0 {
				tokensIn = chunk.Usage.PromptTokens
				tokensOut = chunk.Usage.CompletionTokens
			}
			if len(chunk.Choices) == 0 {
				continue
			}
			delta := chunk.Choices[0].Delta

			// Local runtimes stream thinking as a reasoning_content
			// extension field next to content.
			if reasoning, ok := extraString(delta.JSON.ExtraFields, "reasoning_content"); ok && reasoning != "" {
				if !emit(ctx, out, Chunk{Kind: ChunkReasoning, Text: reasoning}) {
					return
				}
			}
			if len(delta.ToolCalls) > 0 {
				for _, tc := range delta.ToolCalls {
					if !emit(ctx, out, Chunk{Kind: ChunkTool, Text: tc.Function.Arguments}) {
						return
					}
				}
			}
			if delta.Content != "" {
				if !emit(ctx, out, Chunk{Kind: ChunkContent, Text: delta.Content}) {
					return
				}
			}
		}

		if err := stream.Err(); err != nil {
			code := Classify(err, b.tier, b.quota)
			b.logger.Debug("stream failed",
				"error_code", string(code),
				"duration_ms", time.Since(started).Milliseconds())
			emit(ctx, out, Chunk{Kind: ChunkError, Err: err, Code: code})
			return
		}

		b.logger.Debug("stream finished",
			"tokens_in", tokensIn,
			"tokens_out", tokensOut,
			"duration_ms", time.Since(started).Milliseconds())
		emit(ctx, out, Chunk{Kind: ChunkDone, TokensIn: tokensIn, TokensOut: tokensOut})
	}()

	return out, nil
}

// emit delivers a chunk unless the consumer went away.
func emit(ctx context.Context, out chan<- Chunk, c Chunk) bool {
	select {
	case out <- c:
		return true
	case <-ctx.Done():
		return false
	}
}

// extraString decodes a string-valued extension field from a streamed delta.
func extraString(fields map[string]respjson.Field, key string) (string, bool) {
	f, ok := fields[key]
	if !ok || !f.Valid() {
		return "", false
	}
	var s string
	if err := json.Unmarshal([]byte(f.Raw()), &s); err != nil {
		return "", false
	}
	return s, true
}
