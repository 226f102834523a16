package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
services:
  radarr:
    url: http://radarr:7878
    api_key: abc123
  sonarr:
    url: https://sonarr.local
    api_key: def456
    verify: true
server:
  transport: sse
  port: 8080
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://radarr:7878", cfg.Services["radarr"].URL)
	assert.Equal(t, "abc123", cfg.Services["radarr"].APIKey)
	assert.False(t, cfg.Services["radarr"].Verify)
	assert.True(t, cfg.Services["sonarr"].Verify)
	assert.Equal(t, "sse", cfg.Server.Transport)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("RADARR_BASE_URL", "http://radarr:7878")
	t.Setenv("RADARR_API_KEY", "envkey")
	t.Setenv("TRANSPORT", "sse")
	t.Setenv("PORT", "9999")

	// Point the default path somewhere empty so the host config is ignored.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://radarr:7878", cfg.Services["radarr"].URL)
	assert.Equal(t, "envkey", cfg.Services["radarr"].APIKey)
	assert.Equal(t, "sse", cfg.Server.Transport)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
services:
  sonarr:
    url: http://old:8989
    api_key: filekey
`)
	t.Setenv("SONARR_BASE_URL", "http://new:8989")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://new:8989", cfg.Services["sonarr"].URL)
	assert.Equal(t, "filekey", cfg.Services["sonarr"].APIKey)
}

func TestDefaults(t *testing.T) {
	path := writeConfig(t, `
services:
  radarr:
    url: http://radarr:7878
    api_key: k
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "stdio", cfg.Server.Transport)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.True(t, cfg.AllowDestructive)

	assert.Equal(t, "header", cfg.Services["radarr"].AuthMethod)
	assert.Equal(t, "X-Api-Key", cfg.Services["radarr"].AuthHeader)

	assert.Equal(t, "qwen/qwen3-4b-2507", cfg.Agent.Model)
	assert.Equal(t, int64(8192), cfg.Agent.MaxTokens)
	assert.InDelta(t, 0.7, cfg.Agent.Temperature, 1e-9)
	assert.InDelta(t, 1.0, cfg.Agent.TopP, 1e-9)
	assert.Equal(t, 9000, cfg.Agent.Port)
	assert.Equal(t, 10, cfg.Agent.MaxIterations)
}

func TestAllowDestructiveFalse(t *testing.T) {
	path := writeConfig(t, `
allow_destructive: false
services:
  radarr:
    url: http://radarr:7878
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.AllowDestructive)
}

func TestAgentEnvOverlay(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LLM_BASE_URL", "http://llm.local/v1")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("MODEL_ID", "some/model")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://llm.local/v1", cfg.Agent.BaseURL)
	assert.Equal(t, "sk-test", cfg.Agent.APIKey)
	assert.Equal(t, "some/model", cfg.Agent.Model)
}

func TestToBoolean(t *testing.T) {
	for _, s := range []string{"1", "true", "True", "YES", "on", " t "} {
		assert.True(t, toBoolean(s), s)
	}
	for _, s := range []string{"0", "false", "no", "", "off"} {
		assert.False(t, toBoolean(s), s)
	}
}
