package transport

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Pavua/krab/pkg/models"
	"github.com/Pavua/krab/pkg/mood"
	"github.com/Pavua/krab/pkg/policy"
	"github.com/Pavua/krab/pkg/queue"
	"github.com/Pavua/krab/pkg/stream"
)

// reactTimeout bounds outbound reactions, which are best-effort.
const reactTimeout = 5 * time.Second

// Ingress consumes transport events and routes each to its consumer:
// reactions to the mood engine, commands to the owner command handler,
// reply-worthy messages to the dispatcher.
type Ingress struct {
	transport  Transport
	builder    *policy.Builder
	dispatcher *queue.Dispatcher
	gate       *queue.ConfirmGate
	replies    *queue.ReplyIndex
	moods      *mood.Engine
	reactor    *mood.AutoReactor
	commands   *CommandHandler
	logger     *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu        sync.Mutex
	submitLog map[models.ChatID][]time.Time
}

// NewIngress wires the event loop. gate, replies, moods, reactor and
// commands may be nil; the matching event kinds are then dropped.
func NewIngress(t Transport, builder *policy.Builder, dispatcher *queue.Dispatcher, gate *queue.ConfirmGate, replies *queue.ReplyIndex, moods *mood.Engine, reactor *mood.AutoReactor, commands *CommandHandler, logger *slog.Logger) *Ingress {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingress{
		transport:  t,
		builder:    builder,
		dispatcher: dispatcher,
		gate:       gate,
		replies:    replies,
		moods:      moods,
		reactor:    reactor,
		commands:   commands,
		logger:     logger.With("component", "ingress"),
		stopCh:     make(chan struct{}),
		submitLog:  make(map[models.ChatID][]time.Time),
	}
}

// Start launches the event loop.
func (i *Ingress) Start() {
	i.wg.Add(1)
	go func() {
		defer i.wg.Done()
		for {
			select {
			case <-i.stopCh:
				return
			case ev, ok := <-i.transport.Events():
				if !ok {
					return
				}
				i.handle(ev)
			}
		}
	}()
}

// Stop terminates the event loop. The transport's own shutdown closes the
// event channel.
func (i *Ingress) Stop() {
	i.stopOnce.Do(func() { close(i.stopCh) })
	i.wg.Wait()
}

// handle routes one event. Never blocks on model work: reply-worthy events
// only enqueue.
func (i *Ingress) handle(ev models.Event) {
	ctx := context.Background()

	switch ev.Kind {
	case models.EventKindReaction:
		i.handleReaction(ctx, ev)
		return
	case models.EventKindCommand:
		i.handleCommand(ctx, ev)
		return
	}

	// Commands can also arrive as plain text starting with "!".
	if _, ok := policy.ParseCommand(ev.Payload); ok {
		i.handleCommand(ctx, ev)
		return
	}

	// A pending confirm consumes the owner's next affirmative message.
	if i.gate != nil && i.builder.IsOwner(ev.AuthorID) {
		if held, ok := i.gate.TryGrant(ev.ChatID, ev.Payload); ok {
			held.Context.ConfirmExpensive = false
			if code := i.dispatcher.Resubmit(held); code != "" {
				i.sendFallback(ctx, ev.ChatID, code)
			}
			return
		}
	}

	if i.moods != nil && ev.Kind == models.EventKindText {
		i.moods.IngestText(ev.ChatID, ev.Payload)
	}

	i.maybeAutoReact(ctx, ev)

	ok, reason := i.builder.ShouldReply(ctx, ev)
	if !ok {
		i.logger.Debug("event skipped", "chat_id", string(ev.ChatID), "reason", reason)
		return
	}

	reqCtx := i.builder.Build(ctx, ev)
	if limit := reqCtx.Policy.RateLimitPerMin; limit > 0 && !i.allowSubmit(ev.ChatID, limit) {
		i.logger.Debug("rate limited", "chat_id", string(ev.ChatID), "limit_per_min", limit)
		return
	}
	if _, code := i.dispatcher.Submit(ev, reqCtx); code != "" {
		switch code {
		case models.CodeDuplicate:
			// Redelivery, already answered or queued. Silence is correct.
		default:
			i.sendFallback(ctx, ev.ChatID, code)
		}
	}
}

// allowSubmit enforces the per-chat rate_limit_per_min policy over a sliding
// one-minute window. Rate-limited events are dropped silently: answering a
// flood with flood notices would itself be a flood.
func (i *Ingress) allowSubmit(chatID models.ChatID, limit int) bool {
	now := time.Now()
	cutoff := now.Add(-time.Minute)

	i.mu.Lock()
	defer i.mu.Unlock()
	kept := i.submitLog[chatID][:0]
	for _, t := range i.submitLog[chatID] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= limit {
		i.submitLog[chatID] = kept
		return false
	}
	i.submitLog[chatID] = append(kept, now)
	return true
}

// handleReaction folds the reaction into chat mood and, for owner reactions
// on assistant replies, into model feedback.
func (i *Ingress) handleReaction(ctx context.Context, ev models.Event) {
	if i.moods == nil {
		return
	}
	fromOwner := i.builder.IsOwner(ev.AuthorID)
	i.moods.IngestReaction(ctx, ev, fromOwner)

	if !fromOwner || i.replies == nil || ev.ReplyToMessageID == "" {
		return
	}
	if src, ok := i.replies.Lookup(ev.ChatID, ev.ReplyToMessageID); ok {
		i.moods.RecordFeedback(src.Profile, src.ModelID, ev.Emoji)
	}
}

// handleCommand executes an owner command or refuses a non-owner one.
func (i *Ingress) handleCommand(ctx context.Context, ev models.Event) {
	if !i.builder.IsOwner(ev.AuthorID) {
		i.sendFallback(ctx, ev.ChatID, models.CodeBlockedNotOwner)
		return
	}
	if i.commands == nil {
		return
	}
	reply := i.commands.Execute(ctx, ev)
	if reply == "" {
		return
	}
	if _, err := i.transport.SendMessage(ctx, ev.ChatID, reply); err != nil {
		i.logger.Error("command reply failed", "chat_id", string(ev.ChatID), "error", err)
	}
}

func (i *Ingress) maybeAutoReact(ctx context.Context, ev models.Event) {
	if i.reactor == nil {
		return
	}
	emoji, ok := i.reactor.Pick(ev)
	if !ok {
		return
	}
	rctx, cancel := context.WithTimeout(ctx, reactTimeout)
	defer cancel()
	if err := i.transport.AddReaction(rctx, ev.ChatID, ev.MessageID, emoji); err != nil {
		i.logger.Warn("auto-reaction failed", "chat_id", string(ev.ChatID), "error", err)
	}
}

func (i *Ingress) sendFallback(ctx context.Context, chatID models.ChatID, code models.ErrorCode) {
	if _, err := i.transport.SendMessage(ctx, chatID, stream.FallbackText(code)); err != nil {
		i.logger.Error("fallback send failed", "chat_id", string(chatID), "error", err)
	}
}
