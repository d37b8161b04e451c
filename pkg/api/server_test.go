package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavua/krab/pkg/config"
	"github.com/Pavua/krab/pkg/models"
	"github.com/Pavua/krab/pkg/ops"
	"github.com/Pavua/krab/pkg/policy"
	"github.com/Pavua/krab/pkg/router"
)

const testAPIKey = "test-key"

type fakeHealth struct {
	snap      models.HealthSnapshot
	refreshed int
}

func (f *fakeHealth) Snapshot() models.HealthSnapshot { return f.snap }

func (f *fakeHealth) Refresh(_ context.Context) models.HealthSnapshot {
	f.refreshed++
	return f.snap
}

func testServer(t *testing.T) (*Server, *fakeHealth, *ops.AlertManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	healthSvc := &fakeHealth{snap: models.HealthSnapshot{
		Backends: map[string]models.BackendHealth{
			"lmstudio":   {State: models.BackendUp, Up: true},
			"openrouter": {State: models.BackendUp, Up: true},
		},
		RefreshedAt: time.Now(),
	}}

	backends := config.NewBackendRegistry([]config.BackendConfig{
		{ID: "lmstudio", Tier: models.TierLocal, BaseURL: "http://localhost:1234/v1", Models: []string{"qwen-7b"}, Local: true},
		{ID: "openrouter", Tier: models.TierCloudFree, BaseURL: "https://openrouter.ai/api/v1", Models: []string{"glm-free"}},
	})

	defaults := &config.Defaults{
		OwnerPrincipal: "owner", Persona: "default",
		Personas:  map[string]string{"default": "assistant"},
		ForceMode: models.ForceAuto, GroupReplyMode: models.GroupReplyMention,
		MaxOutputChars: 4000, PolicyTTLHours: 24,
	}
	policies := policy.NewStore(defaults, nil, nil, nil)
	tiers := router.NewCloudTierState(config.DefaultRoutingConfig(), nil)
	alerts := ops.NewAlertManager(nil, nil, nil, nil)
	ledger := ops.NewUsageLedger(config.DefaultRoutingConfig(), nil, alerts, nil, nil, nil)
	reporter := ops.NewReporter(ledger, alerts, healthSvc, time.Minute, nil, nil)

	s := NewServer(Config{Addr: ":0", APIKey: testAPIKey},
		nil, healthSvc, nil, backends, policies, tiers, reporter, alerts, nil, nil)
	return s, healthSvc, alerts
}

func do(t *testing.T, s *Server, method, path, key, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthLiteIsMinimal(t *testing.T) {
	s, healthSvc, _ := testServer(t)

	w := do(t, s, http.MethodGet, "/health/lite", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, healthSvc.refreshed, "lite endpoint must not probe")

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "ok")
	assert.Contains(t, resp, "uptime_s")
	assert.Len(t, resp, 2, "lite payload carries liveness and uptime only")

	var lite liteHealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lite))
	assert.True(t, lite.OK)
	assert.GreaterOrEqual(t, lite.UptimeS, int64(0))
}

func TestHealthDeepForcesProbe(t *testing.T) {
	s, healthSvc, _ := testServer(t)

	w := do(t, s, http.MethodGet, "/health", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, healthSvc.refreshed)
}

func TestHealthDegradedWhenBackendDown(t *testing.T) {
	s, healthSvc, _ := testServer(t)
	healthSvc.snap.Backends["lmstudio"] = models.BackendHealth{State: models.BackendDown}

	w := do(t, s, http.MethodGet, "/health", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp healthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusDegraded, resp.Status)

	// A degraded node still answers the lite liveness probe.
	w = do(t, s, http.MethodGet, "/health/lite", "", "")
	var lite liteHealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lite))
	assert.True(t, lite.OK)
}

func TestModelCatalog(t *testing.T) {
	s, _, _ := testServer(t)

	w := do(t, s, http.MethodGet, "/api/model/catalog", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Backends    []catalogEntry `json:"backends"`
		CloudOnPaid bool           `json:"cloud_on_paid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Backends, 2)
	assert.Equal(t, "lmstudio", resp.Backends[0].BackendID)
	assert.Equal(t, models.BackendUp, resp.Backends[0].State)
	assert.False(t, resp.CloudOnPaid)
}

func TestModelApplyRequiresAPIKey(t *testing.T) {
	s, _, _ := testServer(t)
	body := `{"action":"force_local","chat_id":"c1"}`

	w := do(t, s, http.MethodPost, "/api/model/apply", "", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, s, http.MethodPost, "/api/model/apply", "wrong", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, s, http.MethodPost, "/api/model/apply", testAPIKey, body)
	require.Equal(t, http.StatusOK, w.Code)

	p := s.policies.Policy(context.Background(), "c1")
	assert.Equal(t, models.ForceLocal, p.ForceMode)
}

func TestModelApplyResetPaid(t *testing.T) {
	s, _, _ := testServer(t)
	s.tiers.NoteFreeExhausted()
	require.True(t, s.tiers.OnPaid())

	w := do(t, s, http.MethodPost, "/api/model/apply", testAPIKey, `{"action":"reset_paid"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, s.tiers.OnPaid())
}

func TestModelApplyRejectsUnknownAction(t *testing.T) {
	s, _, _ := testServer(t)

	w := do(t, s, http.MethodPost, "/api/model/apply", testAPIKey, `{"action":"explode"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportsCatalogAndLatest(t *testing.T) {
	s, _, _ := testServer(t)

	w := do(t, s, http.MethodGet, "/api/ops/reports/catalog", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, s, http.MethodGet, "/api/ops/reports/latest/usage", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, s, http.MethodGet, "/api/ops/reports/latest/bogus", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAlertAckFlow(t *testing.T) {
	s, _, alerts := testServer(t)
	alerts.Raise("backend_down", "high", "lmstudio is down")

	w := do(t, s, http.MethodGet, "/api/ops/alerts", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "backend_down")

	w = do(t, s, http.MethodPost, "/api/ops/alerts/backend_down/ack", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "ack is a write")

	w = do(t, s, http.MethodPost, "/api/ops/alerts/backend_down/ack", testAPIKey, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, s, http.MethodGet, "/api/ops/alerts", "", "")
	assert.NotContains(t, w.Body.String(), "backend_down")

	w = do(t, s, http.MethodPost, "/api/ops/alerts/nope/ack", testAPIKey, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _, _ := testServer(t)

	w := do(t, s, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
