package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/Pavua/krab/pkg/models"
)

// FakeTransport is an in-memory transport for tests. Inject events with
// Deliver, inspect outbound traffic with Sent and Reactions.
type FakeTransport struct {
	mu        sync.Mutex
	events    chan models.Event
	sent      []SentMessage
	reactions []SentReaction
	authors   map[string]string
	nextID    int
}

// SentMessage is one outbound message recorded by the fake.
type SentMessage struct {
	ChatID    models.ChatID
	MessageID string
	Text      string
}

// SentReaction is one outbound reaction recorded by the fake.
type SentReaction struct {
	ChatID    models.ChatID
	MessageID string
	Emoji     string
}

// NewFakeTransport builds a fake with the given author directory.
func NewFakeTransport(authors map[string]string) *FakeTransport {
	if authors == nil {
		authors = make(map[string]string)
	}
	return &FakeTransport{
		events:  make(chan models.Event, 64),
		authors: authors,
	}
}

// Deliver injects an incoming event.
func (f *FakeTransport) Deliver(ev models.Event) { f.events <- ev }

// Close ends the event stream.
func (f *FakeTransport) Close() { close(f.events) }

func (f *FakeTransport) Events() <-chan models.Event { return f.events }

func (f *FakeTransport) SendMessage(_ context.Context, chatID models.ChatID, text string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := fmt.Sprintf("out-%d", f.nextID)
	f.sent = append(f.sent, SentMessage{ChatID: chatID, MessageID: id, Text: text})
	return id, nil
}

func (f *FakeTransport) EditMessage(_ context.Context, chatID models.ChatID, messageID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.sent {
		if f.sent[i].ChatID == chatID && f.sent[i].MessageID == messageID {
			f.sent[i].Text = text
			return nil
		}
	}
	return fmt.Errorf("no message %s in chat %s", messageID, chatID)
}

func (f *FakeTransport) AddReaction(_ context.Context, chatID models.ChatID, messageID, emoji string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reactions = append(f.reactions, SentReaction{ChatID: chatID, MessageID: messageID, Emoji: emoji})
	return nil
}

func (f *FakeTransport) ResolveAuthor(_ context.Context, authorID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authors[authorID]
}

// Sent returns a copy of the outbound messages so far.
func (f *FakeTransport) Sent() []SentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SentMessage(nil), f.sent...)
}

// Reactions returns a copy of the outbound reactions so far.
func (f *FakeTransport) Reactions() []SentReaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SentReaction(nil), f.reactions...)
}
