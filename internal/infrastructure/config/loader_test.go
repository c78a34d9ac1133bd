package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.True(t, mgr.Created())
	assert.Equal(t, filepath.Join(root, "config", "tempo", "config.toml"), mgr.GetConfigFile())
	assert.FileExists(t, mgr.GetConfigFile())

	cfg := mgr.Get()
	defaults := DefaultConfig()
	assert.Equal(t, defaults.Favicon, cfg.Favicon)
	assert.Equal(t, defaults.Bookmarks, cfg.Bookmarks)
	assert.Equal(t, defaults.Server, cfg.Server)
	assert.Equal(t, defaults.Logging, cfg.Logging)
	assert.Equal(t, filepath.Join(root, "data", "tempo", "tempo.sqlite"), cfg.Database.Path)

	// A second manager reads the file written by the first.
	again, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, again.Load())
	assert.False(t, again.Created())
	assert.Equal(t, cfg, again.Get())
}

func TestManager_LoadReadsFile(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[favicon]
size = 64
probe_timeout_ms = 1500

[bookmarks]
chromium_file = "  /tmp/Bookmarks  "

[server]
addr = "127.0.0.1:9000"
allow_origins = ["chrome-extension://abc", " "]

[database]
path = "/tmp/tempo-test.sqlite"
`), 0o600))

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 64, cfg.Favicon.Size)
	assert.Equal(t, 1500, cfg.Favicon.ProbeTimeoutMs)
	assert.Equal(t, DefaultConfig().Favicon.BatchConcurrency, cfg.Favicon.BatchConcurrency)
	assert.Equal(t, "/tmp/Bookmarks", cfg.Bookmarks.ChromiumFile)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, []string{"chrome-extension://abc"}, cfg.Server.AllowOrigins)
	assert.Equal(t, "/tmp/tempo-test.sqlite", cfg.Database.Path)
	assert.False(t, mgr.Created())
}

func TestManager_EnvOverridesFile(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[favicon]\nsize = 64\n"), 0o600))

	t.Setenv("TEMPO_FAVICON_SIZE", "48")
	t.Setenv("TEMPO_LOG_LEVEL", "DEBUG")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 48, cfg.Favicon.Size)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidFile(t *testing.T) {
	isolateXDG(t)

	t.Run("syntax", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[favicon\nsize = "), 0o600))

		mgr, err := NewManagerForFile(path)
		require.NoError(t, err)
		err = mgr.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[favicon]\nsize = 0\nbatch_concurrency = 0\n"), 0o600))

		mgr, err := NewManagerForFile(path)
		require.NoError(t, err)
		err = mgr.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "favicon.size")
		assert.Contains(t, err.Error(), "favicon.batch_concurrency")
	})
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	mgr, err := NewManagerForFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestNewManagerForFile_EmptyPath(t *testing.T) {
	_, err := NewManagerForFile("")
	assert.Error(t, err)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " WARN "
	cfg.Logging.Format = "bogus"
	cfg.Server.AllowOrigins = []string{"", " http://localhost:3000 "}

	normalizeConfig(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, LogFormatConsole, cfg.Logging.Format)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowOrigins)

	cfg.Logging.Format = "JSON"
	normalizeConfig(cfg)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
}
