package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavua/krab/pkg/models"
)

func TestWebhookInboundDeliversEvent(t *testing.T) {
	tr, err := NewWebhookTransport(WebhookConfig{OutboundURL: "http://bridge.local/out"}, nil)
	require.NoError(t, err)

	body := `{"chat_id":"c1","message_id":"m1","author_id":"owner","kind":"text","payload":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transport/events", strings.NewReader(body))
	w := httptest.NewRecorder()
	tr.HandleInbound(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)
	ev := <-tr.Events()
	assert.Equal(t, models.ChatID("c1"), ev.ChatID)
	assert.Equal(t, models.EventKindText, ev.Kind)
	assert.False(t, ev.ReceivedAt.IsZero())
}

func TestWebhookInboundRejectsMalformed(t *testing.T) {
	tr, err := NewWebhookTransport(WebhookConfig{OutboundURL: "http://bridge.local/out"}, nil)
	require.NoError(t, err)

	for _, body := range []string{"not json", `{"payload":"missing ids"}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/transport/events", strings.NewReader(body))
		w := httptest.NewRecorder()
		tr.HandleInbound(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestWebhookOutboundSend(t *testing.T) {
	var got outboundOp
	bridge := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"message_id": "tg-42"})
	}))
	defer bridge.Close()

	tr, err := NewWebhookTransport(WebhookConfig{OutboundURL: bridge.URL}, nil)
	require.NoError(t, err)

	id, err := tr.SendMessage(context.Background(), "c1", "hello")
	require.NoError(t, err)
	assert.Equal(t, "tg-42", id)
	assert.Equal(t, "send", got.Op)
	assert.Equal(t, "c1", got.ChatID)

	require.NoError(t, tr.AddReaction(context.Background(), "c1", "m1", "❤️"))
	assert.Equal(t, "react", got.Op)
	assert.Equal(t, "❤️", got.Emoji)
}

func TestWebhookOutboundErrorStatus(t *testing.T) {
	bridge := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer bridge.Close()

	tr, err := NewWebhookTransport(WebhookConfig{OutboundURL: bridge.URL}, nil)
	require.NoError(t, err)

	_, err = tr.SendMessage(context.Background(), "c1", "hello")
	assert.Error(t, err)
}

func TestWebhookRequiresOutboundURL(t *testing.T) {
	_, err := NewWebhookTransport(WebhookConfig{}, nil)
	assert.Error(t, err)
}
