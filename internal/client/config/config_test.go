package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000", c.APIBaseURL)
	assert.Equal(t, "gevp.db", c.DatabasePath)
	assert.Equal(t, "127.0.0.1:8080", c.WebAddr)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	t.Setenv("GEVP_CONFIG", "")
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, "127.0.0.1:8080", cfg.WebAddr)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/cfg.yaml"
	require.NoError(t, os.WriteFile(path, []byte("api_base_url: http://file:9000\nlog_level: debug\n"), 0o600))

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-c", path, "-a", "http://flag:7000/"}

	cfg := LoadConfig()

	assert.Equal(t, "http://flag:7000", cfg.APIBaseURL, "flag wins and trailing slash is trimmed")
	assert.Equal(t, "debug", cfg.LogLevel, "file value survives when no flag is given")
	assert.Equal(t, "gevp.db", cfg.DatabasePath)
}
