// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Pavua/krab/ent/alert"
	"github.com/Pavua/krab/ent/attemptrecord"
	"github.com/Pavua/krab/ent/policyoverride"
	"github.com/Pavua/krab/ent/reactionentry"
	"github.com/Pavua/krab/ent/schema"
	"github.com/Pavua/krab/ent/usagecounter"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertFields := schema.Alert{}.Fields()
	_ = alertFields
	// alertDescFirstSeen is the schema descriptor for first_seen field.
	alertDescFirstSeen := alertFields[3].Descriptor()
	// alert.DefaultFirstSeen holds the default value on creation for the first_seen field.
	alert.DefaultFirstSeen = alertDescFirstSeen.Default.(func() time.Time)
	// alertDescLastSeen is the schema descriptor for last_seen field.
	alertDescLastSeen := alertFields[4].Descriptor()
	// alert.DefaultLastSeen holds the default value on creation for the last_seen field.
	alert.DefaultLastSeen = alertDescLastSeen.Default.(func() time.Time)
	// alertDescCount is the schema descriptor for count field.
	alertDescCount := alertFields[5].Descriptor()
	// alert.DefaultCount holds the default value on creation for the count field.
	alert.DefaultCount = alertDescCount.Default.(int64)
	// alertDescAcked is the schema descriptor for acked field.
	alertDescAcked := alertFields[6].Descriptor()
	// alert.DefaultAcked holds the default value on creation for the acked field.
	alert.DefaultAcked = alertDescAcked.Default.(bool)
	attemptrecordFields := schema.AttemptRecord{}.Fields()
	_ = attemptrecordFields
	// attemptrecordDescBytesIn is the schema descriptor for bytes_in field.
	attemptrecordDescBytesIn := attemptrecordFields[7].Descriptor()
	// attemptrecord.DefaultBytesIn holds the default value on creation for the bytes_in field.
	attemptrecord.DefaultBytesIn = attemptrecordDescBytesIn.Default.(int)
	// attemptrecordDescBytesOut is the schema descriptor for bytes_out field.
	attemptrecordDescBytesOut := attemptrecordFields[8].Descriptor()
	// attemptrecord.DefaultBytesOut holds the default value on creation for the bytes_out field.
	attemptrecord.DefaultBytesOut = attemptrecordDescBytesOut.Default.(int)
	// attemptrecordDescCreatedAt is the schema descriptor for created_at field.
	attemptrecordDescCreatedAt := attemptrecordFields[12].Descriptor()
	// attemptrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	attemptrecord.DefaultCreatedAt = attemptrecordDescCreatedAt.Default.(func() time.Time)
	policyoverrideFields := schema.PolicyOverride{}.Fields()
	_ = policyoverrideFields
	// policyoverrideDescReplyEnabled is the schema descriptor for reply_enabled field.
	policyoverrideDescReplyEnabled := policyoverrideFields[3].Descriptor()
	// policyoverride.DefaultReplyEnabled holds the default value on creation for the reply_enabled field.
	policyoverride.DefaultReplyEnabled = policyoverrideDescReplyEnabled.Default.(bool)
	// policyoverrideDescRateLimitPerMin is the schema descriptor for rate_limit_per_min field.
	policyoverrideDescRateLimitPerMin := policyoverrideFields[5].Descriptor()
	// policyoverride.DefaultRateLimitPerMin holds the default value on creation for the rate_limit_per_min field.
	policyoverride.DefaultRateLimitPerMin = policyoverrideDescRateLimitPerMin.Default.(int)
	// policyoverrideDescConfirmExpensive is the schema descriptor for confirm_expensive field.
	policyoverrideDescConfirmExpensive := policyoverrideFields[6].Descriptor()
	// policyoverride.DefaultConfirmExpensive holds the default value on creation for the confirm_expensive field.
	policyoverride.DefaultConfirmExpensive = policyoverrideDescConfirmExpensive.Default.(bool)
	// policyoverrideDescMaxOutputChars is the schema descriptor for max_output_chars field.
	policyoverrideDescMaxOutputChars := policyoverrideFields[7].Descriptor()
	// policyoverride.DefaultMaxOutputChars holds the default value on creation for the max_output_chars field.
	policyoverride.DefaultMaxOutputChars = policyoverrideDescMaxOutputChars.Default.(int)
	// policyoverrideDescUpdatedAt is the schema descriptor for updated_at field.
	policyoverrideDescUpdatedAt := policyoverrideFields[8].Descriptor()
	// policyoverride.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	policyoverride.DefaultUpdatedAt = policyoverrideDescUpdatedAt.Default.(func() time.Time)
	// policyoverride.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	policyoverride.UpdateDefaultUpdatedAt = policyoverrideDescUpdatedAt.UpdateDefault.(func() time.Time)
	reactionentryFields := schema.ReactionEntry{}.Fields()
	_ = reactionentryFields
	// reactionentryDescFromOwner is the schema descriptor for from_owner field.
	reactionentryDescFromOwner := reactionentryFields[3].Descriptor()
	// reactionentry.DefaultFromOwner holds the default value on creation for the from_owner field.
	reactionentry.DefaultFromOwner = reactionentryDescFromOwner.Default.(bool)
	// reactionentryDescCreatedAt is the schema descriptor for created_at field.
	reactionentryDescCreatedAt := reactionentryFields[4].Descriptor()
	// reactionentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	reactionentry.DefaultCreatedAt = reactionentryDescCreatedAt.Default.(func() time.Time)
	usagecounterFields := schema.UsageCounter{}.Fields()
	_ = usagecounterFields
	// usagecounterDescCalls is the schema descriptor for calls field.
	usagecounterDescCalls := usagecounterFields[3].Descriptor()
	// usagecounter.DefaultCalls holds the default value on creation for the calls field.
	usagecounter.DefaultCalls = usagecounterDescCalls.Default.(int64)
	// usagecounterDescFailures is the schema descriptor for failures field.
	usagecounterDescFailures := usagecounterFields[4].Descriptor()
	// usagecounter.DefaultFailures holds the default value on creation for the failures field.
	usagecounter.DefaultFailures = usagecounterDescFailures.Default.(int64)
	// usagecounterDescEstimatedCostUsd is the schema descriptor for estimated_cost_usd field.
	usagecounterDescEstimatedCostUsd := usagecounterFields[5].Descriptor()
	// usagecounter.DefaultEstimatedCostUsd holds the default value on creation for the estimated_cost_usd field.
	usagecounter.DefaultEstimatedCostUsd = usagecounterDescEstimatedCostUsd.Default.(float64)
	// usagecounterDescTokensIn is the schema descriptor for tokens_in field.
	usagecounterDescTokensIn := usagecounterFields[6].Descriptor()
	// usagecounter.DefaultTokensIn holds the default value on creation for the tokens_in field.
	usagecounter.DefaultTokensIn = usagecounterDescTokensIn.Default.(int64)
	// usagecounterDescTokensOut is the schema descriptor for tokens_out field.
	usagecounterDescTokensOut := usagecounterFields[7].Descriptor()
	// usagecounter.DefaultTokensOut holds the default value on creation for the tokens_out field.
	usagecounter.DefaultTokensOut = usagecounterDescTokensOut.Default.(int64)
	// usagecounterDescUpdatedAt is the schema descriptor for updated_at field.
	usagecounterDescUpdatedAt := usagecounterFields[8].Descriptor()
	// usagecounter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usagecounter.DefaultUpdatedAt = usagecounterDescUpdatedAt.Default.(func() time.Time)
	// usagecounter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usagecounter.UpdateDefaultUpdatedAt = usagecounterDescUpdatedAt.UpdateDefault.(func() time.Time)
}
