package backend

import (
	"context"
	"sync"
	"time"

	"github.com/Pavua/krab/pkg/models"
)

// Fake is a scripted backend for tests. Each ChatStream call pops the next
// script; when the scripts run out the last one repeats.
type Fake struct {
	BackendID   string
	BackendTier models.Tier
	ModelIDs    []string
	ProbeErr    error

	// ChunkDelay, when set, spaces chunk delivery to exercise idle timers.
	ChunkDelay time.Duration

	mu       sync.Mutex
	scripts  [][]Chunk
	calls    int
	requests []ChatRequest
}

var _ Backend = (*Fake)(nil)

// NewFake builds a scripted backend.
func NewFake(id string, tier models.Tier, modelIDs ...string) *Fake {
	return &Fake{BackendID: id, BackendTier: tier, ModelIDs: modelIDs}
}

// Script appends a canned chunk sequence for one future ChatStream call.
func (f *Fake) Script(chunks ...Chunk) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts = append(f.scripts, chunks)
	return f
}

// ScriptText is shorthand for a stream that yields one content chunk and a
// clean done.
func (f *Fake) ScriptText(text string) *Fake {
	return f.Script(
		Chunk{Kind: ChunkContent, Text: text},
		Chunk{Kind: ChunkDone, TokensIn: 10, TokensOut: int64(len(text) / 4)},
	)
}

// ScriptError is shorthand for a stream that fails immediately.
func (f *Fake) ScriptError(code models.ErrorCode, err error) *Fake {
	return f.Script(Chunk{Kind: ChunkError, Code: code, Err: err})
}

// Calls reports how many streams were started.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Requests returns the recorded chat requests in call order.
func (f *Fake) Requests() []ChatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ChatRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

func (f *Fake) ID() string        { return f.BackendID }
func (f *Fake) Tier() models.Tier { return f.BackendTier }

func (f *Fake) Models(context.Context) ([]string, error) {
	if f.ProbeErr != nil {
		return nil, f.ProbeErr
	}
	return f.ModelIDs, nil
}

func (f *Fake) Probe(context.Context) error { return f.ProbeErr }

func (f *Fake) ChatStream(ctx context.Context, req ChatRequest) (<-chan Chunk, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	idx := f.calls
	f.calls++
	if idx >= len(f.scripts) {
		idx = len(f.scripts) - 1
	}
	var script []Chunk
	if idx >= 0 {
		script = f.scripts[idx]
	}
	delay := f.ChunkDelay
	f.mu.Unlock()

	out := make(chan Chunk, len(script)+1)
	go func() {
		defer close(out)
		for _, c := range script {
			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-ctx.Done():
					return
				}
			}
			select {
			case out <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
