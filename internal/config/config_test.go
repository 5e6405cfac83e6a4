package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets keys for the duration of the test
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t, "PORT", "BASE_URL", "TEMPLATES_DIR", "DEBUG")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "templates", cfg.TemplatesDir)
	assert.False(t, cfg.Debug)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t, "PORT", "BASE_URL", "TEMPLATES_DIR", "DEBUG")
	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("PORT=9090\nBASE_URL=https://show.example\nDEBUG=1\n"), 0o600))

	cfg, err := Load(env)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://show.example", cfg.BaseURL)
	assert.True(t, cfg.Debug)
}

func TestLoadRejectsBadPort(t *testing.T) {
	clearEnv(t, "BASE_URL")
	t.Setenv("PORT", "http")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
