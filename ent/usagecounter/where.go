// Code generated by ent, DO NOT EDIT.

package usagecounter

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Pavua/krab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldID, id))
}

// Month applies equality check predicate on the "month" field. It's identical to MonthEQ.
func Month(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldMonth, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldModelID, v))
}

// Calls applies equality check predicate on the "calls" field. It's identical to CallsEQ.
func Calls(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldCalls, v))
}

// Failures applies equality check predicate on the "failures" field. It's identical to FailuresEQ.
func Failures(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldFailures, v))
}

// EstimatedCostUsd applies equality check predicate on the "estimated_cost_usd" field. It's identical to EstimatedCostUsdEQ.
func EstimatedCostUsd(v float64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// TokensIn applies equality check predicate on the "tokens_in" field. It's identical to TokensInEQ.
func TokensIn(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldTokensIn, v))
}

// TokensOut applies equality check predicate on the "tokens_out" field. It's identical to TokensOutEQ.
func TokensOut(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldTokensOut, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldUpdatedAt, v))
}

// MonthEQ applies the EQ predicate on the "month" field.
func MonthEQ(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldMonth, v))
}

// MonthNEQ applies the NEQ predicate on the "month" field.
func MonthNEQ(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldMonth, v))
}

// MonthIn applies the In predicate on the "month" field.
func MonthIn(vs ...string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldMonth, vs...))
}

// MonthNotIn applies the NotIn predicate on the "month" field.
func MonthNotIn(vs ...string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldMonth, vs...))
}

// MonthGT applies the GT predicate on the "month" field.
func MonthGT(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldMonth, v))
}

// MonthGTE applies the GTE predicate on the "month" field.
func MonthGTE(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldMonth, v))
}

// MonthLT applies the LT predicate on the "month" field.
func MonthLT(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldMonth, v))
}

// MonthLTE applies the LTE predicate on the "month" field.
func MonthLTE(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldMonth, v))
}

// MonthContains applies the Contains predicate on the "month" field.
func MonthContains(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldContains(FieldMonth, v))
}

// MonthHasPrefix applies the HasPrefix predicate on the "month" field.
func MonthHasPrefix(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldHasPrefix(FieldMonth, v))
}

// MonthHasSuffix applies the HasSuffix predicate on the "month" field.
func MonthHasSuffix(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldHasSuffix(FieldMonth, v))
}

// MonthEqualFold applies the EqualFold predicate on the "month" field.
func MonthEqualFold(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEqualFold(FieldMonth, v))
}

// MonthContainsFold applies the ContainsFold predicate on the "month" field.
func MonthContainsFold(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldContainsFold(FieldMonth, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldTier, vs...))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldContainsFold(FieldModelID, v))
}

// CallsEQ applies the EQ predicate on the "calls" field.
func CallsEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldCalls, v))
}

// CallsNEQ applies the NEQ predicate on the "calls" field.
func CallsNEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldCalls, v))
}

// CallsIn applies the In predicate on the "calls" field.
func CallsIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldCalls, vs...))
}

// CallsNotIn applies the NotIn predicate on the "calls" field.
func CallsNotIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldCalls, vs...))
}

// CallsGT applies the GT predicate on the "calls" field.
func CallsGT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldCalls, v))
}

// CallsGTE applies the GTE predicate on the "calls" field.
func CallsGTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldCalls, v))
}

// CallsLT applies the LT predicate on the "calls" field.
func CallsLT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldCalls, v))
}

// CallsLTE applies the LTE predicate on the "calls" field.
func CallsLTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldCalls, v))
}

// FailuresEQ applies the EQ predicate on the "failures" field.
func FailuresEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldFailures, v))
}

// FailuresNEQ applies the NEQ predicate on the "failures" field.
func FailuresNEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldFailures, v))
}

// FailuresIn applies the In predicate on the "failures" field.
func FailuresIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldFailures, vs...))
}

// FailuresNotIn applies the NotIn predicate on the "failures" field.
func FailuresNotIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldFailures, vs...))
}

// FailuresGT applies the GT predicate on the "failures" field.
func FailuresGT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldFailures, v))
}

// FailuresGTE applies the GTE predicate on the "failures" field.
func FailuresGTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldFailures, v))
}

// FailuresLT applies the LT predicate on the "failures" field.
func FailuresLT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldFailures, v))
}

// FailuresLTE applies the LTE predicate on the "failures" field.
func FailuresLTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldFailures, v))
}

// EstimatedCostUsdEQ applies the EQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdEQ(v float64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdNEQ applies the NEQ predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNEQ(v float64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdIn applies the In predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdIn(vs ...float64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdNotIn applies the NotIn predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdNotIn(vs ...float64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldEstimatedCostUsd, vs...))
}

// EstimatedCostUsdGT applies the GT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGT(v float64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdGTE applies the GTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdGTE(v float64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLT applies the LT predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLT(v float64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldEstimatedCostUsd, v))
}

// EstimatedCostUsdLTE applies the LTE predicate on the "estimated_cost_usd" field.
func EstimatedCostUsdLTE(v float64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldEstimatedCostUsd, v))
}

// TokensInEQ applies the EQ predicate on the "tokens_in" field.
func TokensInEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldTokensIn, v))
}

// TokensInNEQ applies the NEQ predicate on the "tokens_in" field.
func TokensInNEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldTokensIn, v))
}

// TokensInIn applies the In predicate on the "tokens_in" field.
func TokensInIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldTokensIn, vs...))
}

// TokensInNotIn applies the NotIn predicate on the "tokens_in" field.
func TokensInNotIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldTokensIn, vs...))
}

// TokensInGT applies the GT predicate on the "tokens_in" field.
func TokensInGT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldTokensIn, v))
}

// TokensInGTE applies the GTE predicate on the "tokens_in" field.
func TokensInGTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldTokensIn, v))
}

// TokensInLT applies the LT predicate on the "tokens_in" field.
func TokensInLT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldTokensIn, v))
}

// TokensInLTE applies the LTE predicate on the "tokens_in" field.
func TokensInLTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldTokensIn, v))
}

// TokensOutEQ applies the EQ predicate on the "tokens_out" field.
func TokensOutEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldTokensOut, v))
}

// TokensOutNEQ applies the NEQ predicate on the "tokens_out" field.
func TokensOutNEQ(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldTokensOut, v))
}

// TokensOutIn applies the In predicate on the "tokens_out" field.
func TokensOutIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldTokensOut, vs...))
}

// TokensOutNotIn applies the NotIn predicate on the "tokens_out" field.
func TokensOutNotIn(vs ...int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldTokensOut, vs...))
}

// TokensOutGT applies the GT predicate on the "tokens_out" field.
func TokensOutGT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldTokensOut, v))
}

// TokensOutGTE applies the GTE predicate on the "tokens_out" field.
func TokensOutGTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldTokensOut, v))
}

// TokensOutLT applies the LT predicate on the "tokens_out" field.
func TokensOutLT(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldTokensOut, v))
}

// TokensOutLTE applies the LTE predicate on the "tokens_out" field.
func TokensOutLTE(v int64) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldTokensOut, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UsageCounter {
	return predicate.UsageCounter(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UsageCounter) predicate.UsageCounter {
	return predicate.UsageCounter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UsageCounter) predicate.UsageCounter {
	return predicate.UsageCounter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UsageCounter) predicate.UsageCounter {
	return predicate.UsageCounter(sql.NotPredicates(p))
}
