// Package policy holds per-chat behavior state: TTL-bounded policy
// overrides, context building for requests and the owner command grammar.
package policy

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
)

// OverrideStore persists policy overrides across restarts.
type OverrideStore interface {
	SaveOverride(ctx context.Context, chatID models.ChatID, p models.Policy, expiresAt time.Time) error
	LoadOverride(ctx context.Context, chatID models.ChatID) (models.Policy, time.Time, bool, error)
	DeleteOverride(ctx context.Context, chatID models.ChatID) error
}

type override struct {
	policy    models.Policy
	expiresAt time.Time
}

// Store answers "what is the effective policy for this chat right now".
// Overrides expire back to the configured defaults after the TTL; reads
// after expiry see defaults even if cleanup has not run yet.
type Store struct {
	mu        sync.Mutex
	defaults  *config.Defaults
	overrides map[models.ChatID]override
	loaded    map[models.ChatID]bool
	persist   OverrideStore
	ttl       time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewStore builds a policy store. persist may be nil in tests.
func NewStore(defaults *config.Defaults, persist OverrideStore, logger *slog.Logger, now func() time.Time) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	ttl := time.Duration(defaults.PolicyTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{
		defaults:  defaults,
		overrides: make(map[models.ChatID]override),
		loaded:    make(map[models.ChatID]bool),
		persist:   persist,
		ttl:       ttl,
		logger:    logger.With("component", "policy"),
		now:       now,
	}
}

// Policy returns the effective policy for a chat: the live override when one
// exists and has not expired, the defaults otherwise.
func (s *Store) Policy(ctx context.Context, chatID models.ChatID) models.Policy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policyLocked(ctx, chatID)
}

func (s *Store) policyLocked(ctx context.Context, chatID models.ChatID) models.Policy {
	s.ensureLoadedLocked(ctx, chatID)
	ov, ok := s.overrides[chatID]
	if !ok || s.now().After(ov.expiresAt) {
		delete(s.overrides, chatID)
		return s.defaults.DefaultPolicy()
	}
	return ov.policy
}

// ensureLoadedLocked read-throughs the persisted override once per chat.
func (s *Store) ensureLoadedLocked(ctx context.Context, chatID models.ChatID) {
	if s.persist == nil || s.loaded[chatID] {
		return
	}
	s.loaded[chatID] = true
	p, expiresAt, found, err := s.persist.LoadOverride(ctx, chatID)
	if err != nil {
		s.logger.Warn("override load failed", "chat_id", string(chatID), "error", err)
		return
	}
	if found && s.now().Before(expiresAt) {
		s.overrides[chatID] = override{policy: p, expiresAt: expiresAt}
	}
}

// Mutate applies fn to the chat's effective policy and stores the result as
// an override with a fresh TTL.
func (s *Store) Mutate(ctx context.Context, chatID models.ChatID, fn func(*models.Policy)) models.Policy {
	s.mu.Lock()
	p := s.policyLocked(ctx, chatID)
	fn(&p)
	expiresAt := s.now().Add(s.ttl)
	s.overrides[chatID] = override{policy: p, expiresAt: expiresAt}
	s.mu.Unlock()

	if s.persist != nil {
		if err := s.persist.SaveOverride(ctx, chatID, p, expiresAt); err != nil {
			s.logger.Warn("override save failed", "chat_id", string(chatID), "error", err)
		}
	}
	return p
}

// Clear drops the chat's override, reverting to defaults immediately.
func (s *Store) Clear(ctx context.Context, chatID models.ChatID) {
	s.mu.Lock()
	delete(s.overrides, chatID)
	s.loaded[chatID] = true
	s.mu.Unlock()

	if s.persist != nil {
		if err := s.persist.DeleteOverride(ctx, chatID); err != nil {
			s.logger.Warn("override delete failed", "chat_id", string(chatID), "error", err)
		}
	}
}

// Snapshot freezes the effective policy for a request at submit time.
func (s *Store) Snapshot(ctx context.Context, chatID models.ChatID) models.PolicySnapshot {
	return models.PolicySnapshot{
		Policy:  s.Policy(ctx, chatID),
		TakenAt: s.now(),
	}
}

// HasOverride reports whether a live override exists for the chat.
func (s *Store) HasOverride(ctx context.Context, chatID models.ChatID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoadedLocked(ctx, chatID)
	ov, ok := s.overrides[chatID]
	return ok && s.now().Before(ov.expiresAt)
}
