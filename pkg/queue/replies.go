package queue

import (
	"sync"

	"github.com/Pavua/krab/pkg/models"
)

// repliesPerChat bounds how many sent replies are remembered for reaction
// attribution.
const repliesPerChat = 64

// ReplySource identifies the profile and model that produced a reply, so an
// owner reaction on it can be scored against the right candidate.
type ReplySource struct {
	Profile models.TaskProfile
	ModelID string
}

// ReplyIndex maps sent reply message IDs back to their routing source.
type ReplyIndex struct {
	mu    sync.Mutex
	chats map[models.ChatID]*replyRing
}

type replyRing struct {
	ids     []string
	sources map[string]ReplySource
	idx     int
}

// NewReplyIndex builds an empty index.
func NewReplyIndex() *ReplyIndex {
	return &ReplyIndex{chats: make(map[models.ChatID]*replyRing)}
}

// Note records that messageID in chatID was produced by the given source.
func (x *ReplyIndex) Note(chatID models.ChatID, messageID string, src ReplySource) {
	if messageID == "" {
		return
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	ring, ok := x.chats[chatID]
	if !ok {
		ring = &replyRing{
			ids:     make([]string, 0, repliesPerChat),
			sources: make(map[string]ReplySource, repliesPerChat),
		}
		x.chats[chatID] = ring
	}
	if len(ring.ids) < cap(ring.ids) {
		ring.ids = append(ring.ids, messageID)
	} else {
		delete(ring.sources, ring.ids[ring.idx])
		ring.ids[ring.idx] = messageID
		ring.idx = (ring.idx + 1) % cap(ring.ids)
	}
	ring.sources[messageID] = src
}

// Lookup resolves a reacted-to message back to its source.
func (x *ReplyIndex) Lookup(chatID models.ChatID, messageID string) (ReplySource, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()
	ring, ok := x.chats[chatID]
	if !ok {
		return ReplySource{}, false
	}
	src, ok := ring.sources[messageID]
	return src, ok
}
