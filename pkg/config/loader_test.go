package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavua/krab/pkg/models"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitializeMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.Dispatch.QueueMax)
	assert.Equal(t, 90*time.Second, cfg.Dispatch.SLA)
	assert.Equal(t, 2, cfg.Routing.NCloudCandidates)
	assert.Equal(t, 2000, cfg.Guardrails.ReasoningCapChars)
	assert.Zero(t, cfg.Backends.Len())
}

func TestInitializeMergesFileOverDefaults(t *testing.T) {
	dir := writeSettings(t, `
dispatch:
  queue_max: 8
routing:
  n_cloud_candidates: 3
backends:
  - id: lmstudio
    tier: local
    base_url: http://localhost:1234/v1
    models: [qwen-7b]
    local: true
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Dispatch.QueueMax)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, 90*time.Second, cfg.Dispatch.SLA)
	assert.Equal(t, 3, cfg.Routing.NCloudCandidates)

	b, err := cfg.Backends.Get("lmstudio")
	require.NoError(t, err)
	assert.Equal(t, models.TierLocal, b.Tier)
	assert.True(t, b.Local)
}

func TestInitializeExpandsEnvTemplates(t *testing.T) {
	t.Setenv("TEST_OPENROUTER_KEY", "sk-or-test")
	dir := writeSettings(t, `
backends:
  - id: openrouter
    tier: cloud_free
    base_url: https://openrouter.ai/api/v1
    api_key: "{{.TEST_OPENROUTER_KEY}}"
    models: [glm-free]
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)

	b, err := cfg.Backends.Get("openrouter")
	require.NoError(t, err)
	assert.Equal(t, "sk-or-test", b.APIKey)
}

func TestInitializeEnvOverridesWinOverFile(t *testing.T) {
	t.Setenv("QUEUE_MAX", "4")
	t.Setenv("SLA_SEC", "45")
	t.Setenv("CLOUD_TIER_STICKY_ON_PAID", "0")
	dir := writeSettings(t, "dispatch:\n  queue_max: 8\n")

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Dispatch.QueueMax)
	assert.Equal(t, 45*time.Second, cfg.Dispatch.SLA)
	assert.False(t, cfg.Routing.StickyOnPaid)
}

func TestInitializeRejectsInvalidConfig(t *testing.T) {
	dir := writeSettings(t, `
backends:
  - id: broken
    tier: warp
    models: []
`)
	_, err := Initialize(dir)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), `backend "broken"`)
}

func TestValidateAggregatesProblems(t *testing.T) {
	cfg := &Config{
		Defaults:   builtinDefaults(),
		Dispatch:   &DispatchConfig{},
		Routing:    DefaultRoutingConfig(),
		Guardrails: DefaultGuardrailConfig(),
		Backends:   NewBackendRegistry(nil),
	}
	err := Validate(cfg)
	require.Error(t, err)

	ve := err.(*ValidationError)
	assert.GreaterOrEqual(t, len(ve.Problems), 2)
}

func TestSentinelListReplacedWholesale(t *testing.T) {
	dir := writeSettings(t, `
guardrails:
  sentinels:
    - name: custom
      pattern: "CUSTOM_MARKER"
`)
	cfg, err := Initialize(dir)
	require.NoError(t, err)

	require.Len(t, cfg.Guardrails.Sentinels, 1)
	assert.Equal(t, "custom", cfg.Guardrails.Sentinels[0].Name)
}
