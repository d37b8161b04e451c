package backend

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/openai/openai-go"

	"github.com/Pavua/krab/pkg/models"
)

// QuotaClassifier decides whether an upstream rejection means the quota or
// rate budget is exhausted. Providers phrase this differently, so the check
// is pluggable.
type QuotaClassifier interface {
	IsQuotaExhausted(statusCode int, body string) bool
}

// DefaultQuotaClassifier recognizes the common OpenAI-compatible quota
// signals: HTTP 402/429 and the insufficient_quota error type.
type DefaultQuotaClassifier struct{}

func (DefaultQuotaClassifier) IsQuotaExhausted(statusCode int, body string) bool {
	if statusCode == 402 || statusCode == 429 {
		return true
	}
	lower := strings.ToLower(body)
	return strings.Contains(lower, "insufficient_quota") ||
		strings.Contains(lower, "quota exceeded") ||
		strings.Contains(lower, "rate limit")
}

// Classify maps a backend error to a stable error code. Local backends get
// local_* codes for connectivity failures; cloud backends get upstream_*
// codes. The raw error text never reaches chat surfaces, only ops.
func Classify(err error, tier models.Tier, quota QuotaClassifier) models.ErrorCode {
	if err == nil {
		return ""
	}
	if quota == nil {
		quota = DefaultQuotaClassifier{}
	}

	if errors.Is(err, context.Canceled) {
		return models.CodeCancelled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return models.CodeUpstreamTimeout
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		body := apiErr.Error()
		if looksLikeHTML(body) {
			return models.CodeHTMLInAPI
		}
		switch {
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return models.CodeAuthInvalid
		case quota.IsQuotaExhausted(apiErr.StatusCode, body):
			return models.CodeQuotaExhausted
		case apiErr.StatusCode == 404 && strings.Contains(strings.ToLower(body), "model"):
			return models.CodeModelNotLoaded
		case apiErr.StatusCode == 400:
			return models.CodeBadRequest
		case apiErr.StatusCode >= 500:
			return models.CodeUpstream5xx
		}
	}

	if isConnectivity(err) {
		if tier == models.TierLocal {
			return models.CodeLocalUnavailable
		}
		return models.CodeUpstreamUnreachable
	}

	if looksLikeHTML(err.Error()) {
		return models.CodeHTMLInAPI
	}
	if tier == models.TierLocal {
		return models.CodeLocalCrashed
	}
	return models.CodeUpstream5xx
}

func isConnectivity(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// looksLikeHTML detects an HTML page where a JSON API response was expected,
// usually a proxy or captive portal answering in place of the backend.
func looksLikeHTML(body string) bool {
	trimmed := strings.TrimSpace(strings.ToLower(body))
	return strings.Contains(trimmed, "<!doctype html") || strings.Contains(trimmed, "<html")
}
