package policy

import (
	"context"
	"fmt"
	"time"

	"github.com/Pavua/krab/ent"
	"github.com/Pavua/krab/ent/policyoverride"
	"github.com/Pavua/krab/pkg/database"
	"github.com/Pavua/krab/pkg/models"
)

// EntOverrideStore persists policy overrides, one row per chat.
type EntOverrideStore struct {
	db *database.Client
}

// NewEntOverrideStore wraps the database client as an OverrideStore.
func NewEntOverrideStore(db *database.Client) *EntOverrideStore {
	return &EntOverrideStore{db: db}
}

// SaveOverride upserts the chat's override row.
func (s *EntOverrideStore) SaveOverride(ctx context.Context, chatID models.ChatID, p models.Policy, expiresAt time.Time) error {
	err := s.db.PolicyOverride.Create().
		SetChatID(string(chatID)).
		SetForceMode(policyoverride.ForceMode(p.ForceMode)).
		SetPersona(p.Persona).
		SetReplyEnabled(p.ReplyEnabled).
		SetGroupReplyMode(policyoverride.GroupReplyMode(p.GroupReplyMode)).
		SetRateLimitPerMin(p.RateLimitPerMin).
		SetConfirmExpensive(p.ConfirmExpensive).
		SetMaxOutputChars(p.MaxOutputChars).
		SetExpiresAt(expiresAt).
		OnConflictColumns(policyoverride.FieldChatID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save policy override: %w", err)
	}
	return nil
}

// LoadOverride reads the chat's override row. Returns found=false when the
// chat has no row.
func (s *EntOverrideStore) LoadOverride(ctx context.Context, chatID models.ChatID) (models.Policy, time.Time, bool, error) {
	row, err := s.db.PolicyOverride.Query().
		Where(policyoverride.ChatID(string(chatID))).
		Only(ctx)
	if ent.IsNotFound(err) {
		return models.Policy{}, time.Time{}, false, nil
	}
	if err != nil {
		return models.Policy{}, time.Time{}, false, fmt.Errorf("load policy override: %w", err)
	}
	p := models.Policy{
		ForceMode:        models.ForceMode(row.ForceMode),
		Persona:          row.Persona,
		ReplyEnabled:     row.ReplyEnabled,
		GroupReplyMode:   models.GroupReplyMode(row.GroupReplyMode),
		RateLimitPerMin:  row.RateLimitPerMin,
		ConfirmExpensive: row.ConfirmExpensive,
		MaxOutputChars:   row.MaxOutputChars,
	}
	return p, row.ExpiresAt, true, nil
}

// DeleteOverride removes the chat's override row.
func (s *EntOverrideStore) DeleteOverride(ctx context.Context, chatID models.ChatID) error {
	_, err := s.db.PolicyOverride.Delete().
		Where(policyoverride.ChatID(string(chatID))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete policy override: %w", err)
	}
	return nil
}

// PruneExpired deletes override rows past their expiry. Called periodically
// by the cleanup loop.
func (s *EntOverrideStore) PruneExpired(ctx context.Context, now time.Time) (int, error) {
	n, err := s.db.PolicyOverride.Delete().
		Where(policyoverride.ExpiresAtLT(now)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune policy overrides: %w", err)
	}
	return n, nil
}
