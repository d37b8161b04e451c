// Code generated by ent, DO NOT EDIT.

package attemptrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Pavua/krab/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldRequestID, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldChatID, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldModelID, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldOutcome, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldErrorCode, v))
}

// RouteReason applies equality check predicate on the "route_reason" field. It's identical to RouteReasonEQ.
func RouteReason(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldRouteReason, v))
}

// BytesIn applies equality check predicate on the "bytes_in" field. It's identical to BytesInEQ.
func BytesIn(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldBytesIn, v))
}

// BytesOut applies equality check predicate on the "bytes_out" field. It's identical to BytesOutEQ.
func BytesOut(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldBytesOut, v))
}

// ErrorDetail applies equality check predicate on the "error_detail" field. It's identical to ErrorDetailEQ.
func ErrorDetail(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldErrorDetail, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldEndedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContainsFold(FieldRequestID, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContainsFold(FieldChatID, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldTier, vs...))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContainsFold(FieldModelID, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContainsFold(FieldOutcome, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContainsFold(FieldErrorCode, v))
}

// RouteReasonEQ applies the EQ predicate on the "route_reason" field.
func RouteReasonEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldRouteReason, v))
}

// RouteReasonNEQ applies the NEQ predicate on the "route_reason" field.
func RouteReasonNEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldRouteReason, v))
}

// RouteReasonIn applies the In predicate on the "route_reason" field.
func RouteReasonIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldRouteReason, vs...))
}

// RouteReasonNotIn applies the NotIn predicate on the "route_reason" field.
func RouteReasonNotIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldRouteReason, vs...))
}

// RouteReasonGT applies the GT predicate on the "route_reason" field.
func RouteReasonGT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldRouteReason, v))
}

// RouteReasonGTE applies the GTE predicate on the "route_reason" field.
func RouteReasonGTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldRouteReason, v))
}

// RouteReasonLT applies the LT predicate on the "route_reason" field.
func RouteReasonLT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldRouteReason, v))
}

// RouteReasonLTE applies the LTE predicate on the "route_reason" field.
func RouteReasonLTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldRouteReason, v))
}

// RouteReasonContains applies the Contains predicate on the "route_reason" field.
func RouteReasonContains(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContains(FieldRouteReason, v))
}

// RouteReasonHasPrefix applies the HasPrefix predicate on the "route_reason" field.
func RouteReasonHasPrefix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasPrefix(FieldRouteReason, v))
}

// RouteReasonHasSuffix applies the HasSuffix predicate on the "route_reason" field.
func RouteReasonHasSuffix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasSuffix(FieldRouteReason, v))
}

// RouteReasonIsNil applies the IsNil predicate on the "route_reason" field.
func RouteReasonIsNil() predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIsNull(FieldRouteReason))
}

// RouteReasonNotNil applies the NotNil predicate on the "route_reason" field.
func RouteReasonNotNil() predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotNull(FieldRouteReason))
}

// RouteReasonEqualFold applies the EqualFold predicate on the "route_reason" field.
func RouteReasonEqualFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEqualFold(FieldRouteReason, v))
}

// RouteReasonContainsFold applies the ContainsFold predicate on the "route_reason" field.
func RouteReasonContainsFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContainsFold(FieldRouteReason, v))
}

// BytesInEQ applies the EQ predicate on the "bytes_in" field.
func BytesInEQ(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldBytesIn, v))
}

// BytesInNEQ applies the NEQ predicate on the "bytes_in" field.
func BytesInNEQ(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldBytesIn, v))
}

// BytesInIn applies the In predicate on the "bytes_in" field.
func BytesInIn(vs ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldBytesIn, vs...))
}

// BytesInNotIn applies the NotIn predicate on the "bytes_in" field.
func BytesInNotIn(vs ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldBytesIn, vs...))
}

// BytesInGT applies the GT predicate on the "bytes_in" field.
func BytesInGT(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldBytesIn, v))
}

// BytesInGTE applies the GTE predicate on the "bytes_in" field.
func BytesInGTE(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldBytesIn, v))
}

// BytesInLT applies the LT predicate on the "bytes_in" field.
func BytesInLT(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldBytesIn, v))
}

// BytesInLTE applies the LTE predicate on the "bytes_in" field.
func BytesInLTE(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldBytesIn, v))
}

// BytesOutEQ applies the EQ predicate on the "bytes_out" field.
func BytesOutEQ(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldBytesOut, v))
}

// BytesOutNEQ applies the NEQ predicate on the "bytes_out" field.
func BytesOutNEQ(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldBytesOut, v))
}

// BytesOutIn applies the In predicate on the "bytes_out" field.
func BytesOutIn(vs ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldBytesOut, vs...))
}

// BytesOutNotIn applies the NotIn predicate on the "bytes_out" field.
func BytesOutNotIn(vs ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldBytesOut, vs...))
}

// BytesOutGT applies the GT predicate on the "bytes_out" field.
func BytesOutGT(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldBytesOut, v))
}

// BytesOutGTE applies the GTE predicate on the "bytes_out" field.
func BytesOutGTE(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldBytesOut, v))
}

// BytesOutLT applies the LT predicate on the "bytes_out" field.
func BytesOutLT(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldBytesOut, v))
}

// BytesOutLTE applies the LTE predicate on the "bytes_out" field.
func BytesOutLTE(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldBytesOut, v))
}

// ErrorDetailEQ applies the EQ predicate on the "error_detail" field.
func ErrorDetailEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldErrorDetail, v))
}

// ErrorDetailNEQ applies the NEQ predicate on the "error_detail" field.
func ErrorDetailNEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldErrorDetail, v))
}

// ErrorDetailIn applies the In predicate on the "error_detail" field.
func ErrorDetailIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldErrorDetail, vs...))
}

// ErrorDetailNotIn applies the NotIn predicate on the "error_detail" field.
func ErrorDetailNotIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldErrorDetail, vs...))
}

// ErrorDetailGT applies the GT predicate on the "error_detail" field.
func ErrorDetailGT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldErrorDetail, v))
}

// ErrorDetailGTE applies the GTE predicate on the "error_detail" field.
func ErrorDetailGTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldErrorDetail, v))
}

// ErrorDetailLT applies the LT predicate on the "error_detail" field.
func ErrorDetailLT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldErrorDetail, v))
}

// ErrorDetailLTE applies the LTE predicate on the "error_detail" field.
func ErrorDetailLTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldErrorDetail, v))
}

// ErrorDetailContains applies the Contains predicate on the "error_detail" field.
func ErrorDetailContains(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContains(FieldErrorDetail, v))
}

// ErrorDetailHasPrefix applies the HasPrefix predicate on the "error_detail" field.
func ErrorDetailHasPrefix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasPrefix(FieldErrorDetail, v))
}

// ErrorDetailHasSuffix applies the HasSuffix predicate on the "error_detail" field.
func ErrorDetailHasSuffix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasSuffix(FieldErrorDetail, v))
}

// ErrorDetailIsNil applies the IsNil predicate on the "error_detail" field.
func ErrorDetailIsNil() predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIsNull(FieldErrorDetail))
}

// ErrorDetailNotNil applies the NotNil predicate on the "error_detail" field.
func ErrorDetailNotNil() predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotNull(FieldErrorDetail))
}

// ErrorDetailEqualFold applies the EqualFold predicate on the "error_detail" field.
func ErrorDetailEqualFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEqualFold(FieldErrorDetail, v))
}

// ErrorDetailContainsFold applies the ContainsFold predicate on the "error_detail" field.
func ErrorDetailContainsFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContainsFold(FieldErrorDetail, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldEndedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AttemptRecord) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AttemptRecord) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AttemptRecord) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.NotPredicates(p))
}
