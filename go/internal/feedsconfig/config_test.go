package feedsconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("MSF_API_KEY", "test-key")
	t.Setenv("MSF_PASSWORD", "test-pass")
	t.Setenv("MSF_BASE_URL", "https://example.test")
	t.Setenv("MSF_TIMEOUT_SECONDS", "10")

	cfg := NewConfigFromEnv()

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "test-pass", cfg.Password)
	assert.Equal(t, "https://example.test", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestNewConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("MSF_API_KEY", "")
	t.Setenv("MSF_PASSWORD", "")
	t.Setenv("MSF_BASE_URL", "")
	t.Setenv("MSF_VERSION", "")
	t.Setenv("MSF_TIMEOUT_SECONDS", "")

	cfg := NewConfigFromEnv()

	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.BaseURL)
	assert.Zero(t, cfg.Timeout)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	data := "base_url: https://override.test\nversion: v1.5\ntimeout_seconds: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg := Config{APIKey: "key", Password: "pass", BaseURL: "https://env.test"}

	loaded, err := cfg.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://override.test", loaded.BaseURL)
	assert.Equal(t, "v1.5", loaded.Version)
	assert.Equal(t, 5*time.Second, loaded.Timeout)

	// credentials never come from the file
	assert.Equal(t, "key", loaded.APIKey)
	assert.Equal(t, "pass", loaded.Password)
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	cfg := Config{BaseURL: "https://env.test"}

	loaded, err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [oops"), 0o644))

	_, err := Config{}.LoadFile(path)
	assert.Error(t, err)
}
