package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Pavua/krab/pkg/models"
)

// inboundBuffer bounds events waiting for the ingress loop.
const inboundBuffer = 256

// WebhookConfig parameterizes the webhook bridge transport.
type WebhookConfig struct {
	// OutboundURL is the bridge endpoint that relays messages to the chat
	// network.
	OutboundURL string

	// Authors maps principal IDs to display names for owner resolution.
	Authors map[string]string
}

// WebhookTransport bridges a chat network over HTTP: the bridge process
// POSTs incoming events to the control API, and outbound traffic is POSTed
// back to the bridge.
type WebhookTransport struct {
	cfg    WebhookConfig
	client *http.Client
	logger *slog.Logger

	events    chan models.Event
	closeOnce sync.Once
}

// NewWebhookTransport builds the transport. Returns an error when the
// outbound URL is missing.
func NewWebhookTransport(cfg WebhookConfig, logger *slog.Logger) (*WebhookTransport, error) {
	if cfg.OutboundURL == "" {
		return nil, fmt.Errorf("transport outbound URL is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookTransport{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger.With("component", "webhook_transport"),
		events: make(chan models.Event, inboundBuffer),
	}, nil
}

// Events yields inbound events delivered by the bridge.
func (t *WebhookTransport) Events() <-chan models.Event { return t.events }

// Close ends the event stream.
func (t *WebhookTransport) Close() {
	t.closeOnce.Do(func() { close(t.events) })
}

// HandleInbound is the HTTP handler the control API mounts for the bridge.
// A full buffer answers 503 so the bridge retries with backoff.
func (t *WebhookTransport) HandleInbound(w http.ResponseWriter, r *http.Request) {
	var ev models.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "bad event payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if ev.ChatID == "" || ev.MessageID == "" {
		http.Error(w, "chat_id and message_id are required", http.StatusBadRequest)
		return
	}
	if ev.ReceivedAt.IsZero() {
		ev.ReceivedAt = time.Now()
	}
	select {
	case t.events <- ev:
		w.WriteHeader(http.StatusAccepted)
	default:
		http.Error(w, "event buffer full", http.StatusServiceUnavailable)
	}
}

// outboundOp is the payload POSTed to the bridge.
type outboundOp struct {
	Op        string `json:"op"`
	ChatID    string `json:"chat_id"`
	MessageID string `json:"message_id,omitempty"`
	Text      string `json:"text,omitempty"`
	Emoji     string `json:"emoji,omitempty"`
}

type outboundResult struct {
	MessageID string `json:"message_id"`
}

func (t *WebhookTransport) post(ctx context.Context, op outboundOp) (outboundResult, error) {
	body, err := json.Marshal(op)
	if err != nil {
		return outboundResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.OutboundURL, bytes.NewReader(body))
	if err != nil {
		return outboundResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return outboundResult{}, fmt.Errorf("bridge %s: %w", op.Op, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return outboundResult{}, fmt.Errorf("bridge %s: status %d", op.Op, resp.StatusCode)
	}
	var out outboundResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// Some ops have empty bodies.
		return outboundResult{}, nil
	}
	return out, nil
}

func (t *WebhookTransport) SendMessage(ctx context.Context, chatID models.ChatID, text string) (string, error) {
	res, err := t.post(ctx, outboundOp{Op: "send", ChatID: string(chatID), Text: text})
	if err != nil {
		return "", err
	}
	return res.MessageID, nil
}

func (t *WebhookTransport) EditMessage(ctx context.Context, chatID models.ChatID, messageID, text string) error {
	_, err := t.post(ctx, outboundOp{Op: "edit", ChatID: string(chatID), MessageID: messageID, Text: text})
	return err
}

func (t *WebhookTransport) AddReaction(ctx context.Context, chatID models.ChatID, messageID, emoji string) error {
	_, err := t.post(ctx, outboundOp{Op: "react", ChatID: string(chatID), MessageID: messageID, Emoji: emoji})
	return err
}

func (t *WebhookTransport) ResolveAuthor(_ context.Context, authorID string) string {
	return t.cfg.Authors[authorID]
}
