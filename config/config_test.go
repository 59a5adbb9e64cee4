package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvProvider, "")
	t.Setenv(EnvModel, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvMaxTurns, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ProviderOffline, cfg.Model.Provider)
	assert.Equal(t, "InventoryAgent", cfg.AgentName)
	assert.Equal(t, DefaultPrompts, cfg.Prompts)
	assert.NotNil(t, cfg.Logger())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stockmesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
agent_name: Clerk
model:
  provider: anthropic
  name: claude-test
  max_tokens: 256
log:
  level: debug
  format: json
prompts:
  - "Save and close session"
`), 0o600))

	t.Setenv(EnvProvider, "openai")
	t.Setenv(EnvModel, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvMaxTurns, "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Clerk", cfg.AgentName)
	assert.Equal(t, ProviderOpenAI, cfg.Model.Provider)
	assert.Equal(t, "claude-test", cfg.Model.Name)
	assert.Equal(t, int64(256), cfg.Model.MaxTokens)
	assert.Equal(t, 0.2, cfg.Model.Temperature)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.MaxTurns)
	assert.Equal(t, []string{"Save and close session"}, cfg.Prompts)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(EnvProvider, "")
	t.Setenv(EnvMaxTurns, "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("model: [unclosed"), 0o600))
	_, err = Load(bad)
	assert.Error(t, err)

	t.Setenv(EnvMaxTurns, "many")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Model.Provider = "llama"
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	cfg.MaxTurns = 0
	cfg.AgentName = ""

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"llama", "loud", "xml", "max_turns", "agent_name"} {
		assert.Contains(t, err.Error(), want)
	}
}
