package backend

import (
	"context"
	"errors"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pavua/krab/pkg/models"
)

func TestClassifyConnectivity(t *testing.T) {
	refused := &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}

	assert.Equal(t, models.CodeLocalUnavailable, Classify(refused, models.TierLocal, nil))
	assert.Equal(t, models.CodeUpstreamUnreachable, Classify(refused, models.TierCloudFree, nil))
}

func TestClassifyContext(t *testing.T) {
	assert.Equal(t, models.CodeCancelled, Classify(context.Canceled, models.TierLocal, nil))
	assert.Equal(t, models.CodeUpstreamTimeout, Classify(context.DeadlineExceeded, models.TierCloudPaid, nil))
}

func TestClassifyHTMLBody(t *testing.T) {
	err := errors.New("<!DOCTYPE html><html><body>502 Bad Gateway</body></html>")
	assert.Equal(t, models.CodeHTMLInAPI, Classify(err, models.TierCloudFree, nil))
}

func TestClassifyUnknownErrorByTier(t *testing.T) {
	err := errors.New("process exited unexpectedly")
	assert.Equal(t, models.CodeLocalCrashed, Classify(err, models.TierLocal, nil))
	assert.Equal(t, models.CodeUpstream5xx, Classify(err, models.TierCloudPaid, nil))
}

func TestDefaultQuotaClassifier(t *testing.T) {
	q := DefaultQuotaClassifier{}

	assert.True(t, q.IsQuotaExhausted(429, ""))
	assert.True(t, q.IsQuotaExhausted(403, `{"error":{"type":"insufficient_quota"}}`))
	assert.True(t, q.IsQuotaExhausted(400, "Rate limit reached for requests"))
	assert.False(t, q.IsQuotaExhausted(500, "internal error"))
}
