package ops

import (
	"context"
	"fmt"
	"time"

	"github.com/Pavua/krab/ent"
	"github.com/Pavua/krab/ent/alert"
	"github.com/Pavua/krab/ent/attemptrecord"
	"github.com/Pavua/krab/ent/usagecounter"
	"github.com/Pavua/krab/pkg/database"
	"github.com/Pavua/krab/pkg/models"
)

// EntStore implements the ops persistence interfaces on the database client.
type EntStore struct {
	db *database.Client
}

// NewEntStore wraps the database client.
func NewEntStore(db *database.Client) *EntStore {
	return &EntStore{db: db}
}

var (
	_ UsageStore   = (*EntStore)(nil)
	_ AlertStore   = (*EntStore)(nil)
	_ AttemptStore = (*EntStore)(nil)
)

// AddUsage increments one month bucket, creating it on first use.
func (s *EntStore) AddUsage(ctx context.Context, month string, tier models.Tier, modelID string, delta UsageDelta) error {
	err := s.db.UsageCounter.Create().
		SetMonth(month).
		SetTier(usagecounter.Tier(tier)).
		SetModelID(modelID).
		SetCalls(delta.Calls).
		SetFailures(delta.Failures).
		SetEstimatedCostUsd(delta.CostUSD).
		SetTokensIn(delta.TokensIn).
		SetTokensOut(delta.TokensOut).
		OnConflictColumns(usagecounter.FieldMonth, usagecounter.FieldTier, usagecounter.FieldModelID).
		Update(func(u *ent.UsageCounterUpsert) {
			u.AddCalls(delta.Calls)
			u.AddFailures(delta.Failures)
			u.AddEstimatedCostUsd(delta.CostUSD)
			u.AddTokensIn(delta.TokensIn)
			u.AddTokensOut(delta.TokensOut)
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("add usage %s/%s/%s: %w", month, tier, modelID, err)
	}
	return nil
}

// UpsertAlert creates or refreshes the alert row for a code.
func (s *EntStore) UpsertAlert(ctx context.Context, code, severity, message string, at time.Time) error {
	err := s.db.Alert.Create().
		SetCode(code).
		SetSeverity(alert.Severity(severity)).
		SetMessage(message).
		SetFirstSeen(at).
		SetLastSeen(at).
		OnConflictColumns(alert.FieldCode).
		Update(func(u *ent.AlertUpsert) {
			u.SetSeverity(alert.Severity(severity))
			u.SetMessage(message)
			u.SetLastSeen(at)
			u.AddCount(1)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert alert %s: %w", code, err)
	}
	return nil
}

// SetAlertAcked flips the acked flag on an alert row.
func (s *EntStore) SetAlertAcked(ctx context.Context, code string, acked bool, at time.Time) error {
	q := s.db.Alert.Update().
		Where(alert.Code(code)).
		SetAcked(acked)
	if acked {
		q.SetAckedAt(at)
	} else {
		q.ClearAckedAt()
	}
	if _, err := q.Save(ctx); err != nil {
		return fmt.Errorf("set alert %s acked=%t: %w", code, acked, err)
	}
	return nil
}

// InsertAttempt appends one attempt log row.
func (s *EntStore) InsertAttempt(ctx context.Context, row AttemptRow) error {
	err := s.db.AttemptRecord.Create().
		SetRequestID(row.RequestID).
		SetChatID(string(row.ChatID)).
		SetTier(attemptrecord.Tier(row.Attempt.Plan.Tier)).
		SetModelID(row.Attempt.Plan.ModelID).
		SetOutcome(string(row.Attempt.Outcome)).
		SetErrorCode(string(row.Attempt.ErrorCode)).
		SetRouteReason(row.Attempt.RouteReason).
		SetBytesIn(row.Attempt.BytesIn).
		SetBytesOut(row.Attempt.BytesOut).
		SetErrorDetail(row.ErrorDetail).
		SetStartedAt(row.Attempt.StartedAt).
		SetEndedAt(row.Attempt.EndedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert attempt %s: %w", row.RequestID, err)
	}
	return nil
}

// PruneAttempts deletes attempt rows older than the retention window.
func (s *EntStore) PruneAttempts(ctx context.Context, olderThan time.Time) (int, error) {
	n, err := s.db.AttemptRecord.Delete().
		Where(attemptrecord.CreatedAtLT(olderThan)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune attempts: %w", err)
	}
	return n, nil
}
