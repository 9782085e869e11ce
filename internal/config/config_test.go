package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "local", cfg.LLMProvider)
	assert.Equal(t, 30*time.Second, cfg.LocalLLMTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG_MODE", "false")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_API_KEY", "sk-test")
	t.Setenv("LOCAL_LLM_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.False(t, cfg.DebugMode)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, 5*time.Second, cfg.LocalLLMTimeout)
	assert.Equal(t, "sk-test", cfg.LLMConfig()["api_key"])
}

func TestLoadIgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("LOCAL_LLM_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.LocalLLMTimeout)
}
