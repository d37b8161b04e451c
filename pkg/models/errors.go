package models

// ErrorCode is the canonical machine-readable classification of a failure.
// Raw backend payloads never reach the user; a short message keyed by
// ErrorCode does.
type ErrorCode string

// Lifecycle codes.
const (
	CodeQueueFull  ErrorCode = "queue_full"
	CodeDuplicate  ErrorCode = "duplicate"
	CodeSLATimeout ErrorCode = "sla_timeout"
	CodeCancelled  ErrorCode = "cancelled"
)

// Local transient codes.
const (
	CodeLocalUnavailable ErrorCode = "local_unavailable"
	CodeLocalCrashed     ErrorCode = "local_crashed"
	CodeModelNotLoaded   ErrorCode = "model_not_loaded"
)

// Cloud transient codes.
const (
	CodeUpstreamUnreachable ErrorCode = "upstream_unreachable"
	CodeUpstream5xx         ErrorCode = "upstream_5xx"
	CodeUpstreamTimeout     ErrorCode = "upstream_timeout"
	CodeHTMLInAPI           ErrorCode = "html_in_api"
)

// Fatal codes, never retried.
const (
	CodeAuthInvalid    ErrorCode = "auth_invalid"
	CodeQuotaExhausted ErrorCode = "quota_exhausted"
	CodeBadRequest     ErrorCode = "bad_request"
)

// Guardrail codes.
const (
	CodeLoopDetected   ErrorCode = "loop_detected"
	CodeReasoningLimit ErrorCode = "reasoning_limit"
	CodeSentinelLeak   ErrorCode = "sentinel_leak"
)

// Policy codes.
const (
	CodeBlockedConfirmExpensive ErrorCode = "blocked_confirm_expensive"
	CodeBlockedNotOwner         ErrorCode = "blocked_not_owner"
)

// Transient reports whether the code is retryable via the Router's
// one-shot fallback. SLA expiry is a cancellation, not a retry trigger.
func (c ErrorCode) Transient() bool {
	switch c {
	case CodeLocalUnavailable, CodeLocalCrashed, CodeModelNotLoaded,
		CodeUpstreamUnreachable, CodeUpstream5xx, CodeUpstreamTimeout,
		CodeHTMLInAPI:
		return true
	default:
		return false
	}
}

// Fatal reports whether the code must skip fallback and surface immediately.
func (c ErrorCode) Fatal() bool {
	switch c {
	case CodeAuthInvalid, CodeQuotaExhausted, CodeBadRequest:
		return true
	default:
		return false
	}
}
