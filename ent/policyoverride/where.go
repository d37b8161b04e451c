// Code generated by ent, DO NOT EDIT.

package policyoverride

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Pavua/krab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLTE(FieldID, id))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldChatID, v))
}

// Persona applies equality check predicate on the "persona" field. It's identical to PersonaEQ.
func Persona(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldPersona, v))
}

// ReplyEnabled applies equality check predicate on the "reply_enabled" field. It's identical to ReplyEnabledEQ.
func ReplyEnabled(v bool) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldReplyEnabled, v))
}

// RateLimitPerMin applies equality check predicate on the "rate_limit_per_min" field. It's identical to RateLimitPerMinEQ.
func RateLimitPerMin(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldRateLimitPerMin, v))
}

// ConfirmExpensive applies equality check predicate on the "confirm_expensive" field. It's identical to ConfirmExpensiveEQ.
func ConfirmExpensive(v bool) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldConfirmExpensive, v))
}

// MaxOutputChars applies equality check predicate on the "max_output_chars" field. It's identical to MaxOutputCharsEQ.
func MaxOutputChars(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldMaxOutputChars, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldExpiresAt, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldContainsFold(FieldChatID, v))
}

// ForceModeEQ applies the EQ predicate on the "force_mode" field.
func ForceModeEQ(v ForceMode) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldForceMode, v))
}

// ForceModeNEQ applies the NEQ predicate on the "force_mode" field.
func ForceModeNEQ(v ForceMode) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNEQ(FieldForceMode, v))
}

// ForceModeIn applies the In predicate on the "force_mode" field.
func ForceModeIn(vs ...ForceMode) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldIn(FieldForceMode, vs...))
}

// ForceModeNotIn applies the NotIn predicate on the "force_mode" field.
func ForceModeNotIn(vs ...ForceMode) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNotIn(FieldForceMode, vs...))
}

// PersonaEQ applies the EQ predicate on the "persona" field.
func PersonaEQ(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldPersona, v))
}

// PersonaNEQ applies the NEQ predicate on the "persona" field.
func PersonaNEQ(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNEQ(FieldPersona, v))
}

// PersonaIn applies the In predicate on the "persona" field.
func PersonaIn(vs ...string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldIn(FieldPersona, vs...))
}

// PersonaNotIn applies the NotIn predicate on the "persona" field.
func PersonaNotIn(vs ...string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNotIn(FieldPersona, vs...))
}

// PersonaGT applies the GT predicate on the "persona" field.
func PersonaGT(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGT(FieldPersona, v))
}

// PersonaGTE applies the GTE predicate on the "persona" field.
func PersonaGTE(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGTE(FieldPersona, v))
}

// PersonaLT applies the LT predicate on the "persona" field.
func PersonaLT(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLT(FieldPersona, v))
}

// PersonaLTE applies the LTE predicate on the "persona" field.
func PersonaLTE(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLTE(FieldPersona, v))
}

// PersonaContains applies the Contains predicate on the "persona" field.
func PersonaContains(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldContains(FieldPersona, v))
}

// PersonaHasPrefix applies the HasPrefix predicate on the "persona" field.
func PersonaHasPrefix(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldHasPrefix(FieldPersona, v))
}

// PersonaHasSuffix applies the HasSuffix predicate on the "persona" field.
func PersonaHasSuffix(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldHasSuffix(FieldPersona, v))
}

// PersonaIsNil applies the IsNil predicate on the "persona" field.
func PersonaIsNil() predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldIsNull(FieldPersona))
}

// PersonaNotNil applies the NotNil predicate on the "persona" field.
func PersonaNotNil() predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNotNull(FieldPersona))
}

// PersonaEqualFold applies the EqualFold predicate on the "persona" field.
func PersonaEqualFold(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEqualFold(FieldPersona, v))
}

// PersonaContainsFold applies the ContainsFold predicate on the "persona" field.
func PersonaContainsFold(v string) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldContainsFold(FieldPersona, v))
}

// ReplyEnabledEQ applies the EQ predicate on the "reply_enabled" field.
func ReplyEnabledEQ(v bool) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldReplyEnabled, v))
}

// ReplyEnabledNEQ applies the NEQ predicate on the "reply_enabled" field.
func ReplyEnabledNEQ(v bool) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNEQ(FieldReplyEnabled, v))
}

// GroupReplyModeEQ applies the EQ predicate on the "group_reply_mode" field.
func GroupReplyModeEQ(v GroupReplyMode) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldGroupReplyMode, v))
}

// GroupReplyModeNEQ applies the NEQ predicate on the "group_reply_mode" field.
func GroupReplyModeNEQ(v GroupReplyMode) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNEQ(FieldGroupReplyMode, v))
}

// GroupReplyModeIn applies the In predicate on the "group_reply_mode" field.
func GroupReplyModeIn(vs ...GroupReplyMode) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldIn(FieldGroupReplyMode, vs...))
}

// GroupReplyModeNotIn applies the NotIn predicate on the "group_reply_mode" field.
func GroupReplyModeNotIn(vs ...GroupReplyMode) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNotIn(FieldGroupReplyMode, vs...))
}

// RateLimitPerMinEQ applies the EQ predicate on the "rate_limit_per_min" field.
func RateLimitPerMinEQ(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldRateLimitPerMin, v))
}

// RateLimitPerMinNEQ applies the NEQ predicate on the "rate_limit_per_min" field.
func RateLimitPerMinNEQ(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNEQ(FieldRateLimitPerMin, v))
}

// RateLimitPerMinIn applies the In predicate on the "rate_limit_per_min" field.
func RateLimitPerMinIn(vs ...int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldIn(FieldRateLimitPerMin, vs...))
}

// RateLimitPerMinNotIn applies the NotIn predicate on the "rate_limit_per_min" field.
func RateLimitPerMinNotIn(vs ...int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNotIn(FieldRateLimitPerMin, vs...))
}

// RateLimitPerMinGT applies the GT predicate on the "rate_limit_per_min" field.
func RateLimitPerMinGT(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGT(FieldRateLimitPerMin, v))
}

// RateLimitPerMinGTE applies the GTE predicate on the "rate_limit_per_min" field.
func RateLimitPerMinGTE(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGTE(FieldRateLimitPerMin, v))
}

// RateLimitPerMinLT applies the LT predicate on the "rate_limit_per_min" field.
func RateLimitPerMinLT(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLT(FieldRateLimitPerMin, v))
}

// RateLimitPerMinLTE applies the LTE predicate on the "rate_limit_per_min" field.
func RateLimitPerMinLTE(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLTE(FieldRateLimitPerMin, v))
}

// ConfirmExpensiveEQ applies the EQ predicate on the "confirm_expensive" field.
func ConfirmExpensiveEQ(v bool) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldConfirmExpensive, v))
}

// ConfirmExpensiveNEQ applies the NEQ predicate on the "confirm_expensive" field.
func ConfirmExpensiveNEQ(v bool) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNEQ(FieldConfirmExpensive, v))
}

// MaxOutputCharsEQ applies the EQ predicate on the "max_output_chars" field.
func MaxOutputCharsEQ(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldMaxOutputChars, v))
}

// MaxOutputCharsNEQ applies the NEQ predicate on the "max_output_chars" field.
func MaxOutputCharsNEQ(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNEQ(FieldMaxOutputChars, v))
}

// MaxOutputCharsIn applies the In predicate on the "max_output_chars" field.
func MaxOutputCharsIn(vs ...int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldIn(FieldMaxOutputChars, vs...))
}

// MaxOutputCharsNotIn applies the NotIn predicate on the "max_output_chars" field.
func MaxOutputCharsNotIn(vs ...int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNotIn(FieldMaxOutputChars, vs...))
}

// MaxOutputCharsGT applies the GT predicate on the "max_output_chars" field.
func MaxOutputCharsGT(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGT(FieldMaxOutputChars, v))
}

// MaxOutputCharsGTE applies the GTE predicate on the "max_output_chars" field.
func MaxOutputCharsGTE(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGTE(FieldMaxOutputChars, v))
}

// MaxOutputCharsLT applies the LT predicate on the "max_output_chars" field.
func MaxOutputCharsLT(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLT(FieldMaxOutputChars, v))
}

// MaxOutputCharsLTE applies the LTE predicate on the "max_output_chars" field.
func MaxOutputCharsLTE(v int) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLTE(FieldMaxOutputChars, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLTE(FieldUpdatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.FieldLTE(FieldExpiresAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PolicyOverride) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PolicyOverride) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PolicyOverride) predicate.PolicyOverride {
	return predicate.PolicyOverride(sql.NotPredicates(p))
}
