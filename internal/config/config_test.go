package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minapp/profilecache/internal/cache"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, cache.DefaultTTLSeconds, cfg.Cache.TTLSeconds)
	assert.Empty(t, cfg.Profile.Endpoint)
	assert.NotEmpty(t, cfg.Profile.Description)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestNewLoadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PROFILECACHE_HOME", home)

	yaml := `
cache:
  enabled: true
  ttl_seconds: 7200
profile:
  endpoint: https://host.example.com/api/userinfo
  token: tok
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yaml), 0600))

	cfg := New()
	assert.Equal(t, 7200, cfg.Cache.TTLSeconds)
	assert.Equal(t, "https://host.example.com/api/userinfo", cfg.Profile.Endpoint)
	assert.Equal(t, "tok", cfg.Profile.Token)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestNewWithoutConfigFile(t *testing.T) {
	t.Setenv("PROFILECACHE_HOME", t.TempDir())

	cfg := New()
	assert.Equal(t, cache.DefaultTTLSeconds, cfg.Cache.TTLSeconds)
	assert.True(t, cfg.Cache.Enabled)
}

func TestEnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PROFILECACHE_HOME", home)

	yaml := "cache:\n  ttl_seconds: 7200\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yaml), 0600))

	t.Setenv(cache.EnvTTLSeconds, "3600")
	t.Setenv(cache.EnvCacheEnabled, "false")
	t.Setenv(cache.EnvCacheDir, "/tmp/pc-cache")

	// Environment wins over the config file.
	cfg := New()
	assert.Equal(t, 3600, cfg.Cache.TTLSeconds)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, "/tmp/pc-cache", cfg.Cache.Directory)

	dir, err := cfg.CacheDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pc-cache", dir)
}

func TestNewFromFile(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("profile:\n  endpoint: https://e\n"), 0600))

		cfg, err := NewFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "https://e", cfg.Profile.Endpoint)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cache: ["), 0600))

		_, err := NewFromFile(path)
		assert.Error(t, err)
	})
}

func TestTTLFallsBackWhenOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.TTLSeconds = 1
	assert.Equal(t, cache.DefaultTTLSeconds, cfg.TTL())

	cfg.Cache.TTLSeconds = 7200
	assert.Equal(t, 7200, cfg.TTL())
}

func TestHomeDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv("PROFILECACHE_HOME", "/tmp/pc-home")
		home, err := GetHomeDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/pc-home", home)

		path, err := DefaultConfigPath()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/pc-home/config.yaml", path)
	})

	t.Run("default under user home", func(t *testing.T) {
		t.Setenv("PROFILECACHE_HOME", "")
		userHome, err := os.UserHomeDir()
		require.NoError(t, err)

		home, err := GetHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(userHome, ".profilecache"), home)
	})
}

func TestEnsureDirs(t *testing.T) {
	home := filepath.Join(t.TempDir(), "pc")
	t.Setenv("PROFILECACHE_HOME", home)

	require.NoError(t, EnsureHomeDir())
	assert.DirExists(t, home)

	cfg := DefaultConfig()
	cfg.Logging.File = filepath.Join(home, "logs", "pc.log")
	require.NoError(t, EnsureLogDir(cfg))
	assert.DirExists(t, filepath.Join(home, "logs"))

	// No log file configured is a no-op.
	cfg.Logging.File = ""
	assert.NoError(t, EnsureLogDir(cfg))
}

func TestGlobalConfig(t *testing.T) {
	t.Setenv("PROFILECACHE_HOME", t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)

	// Initialization happens once.
	assert.Same(t, cfg, GetGlobalConfig())

	replacement := DefaultConfig()
	SetGlobalConfig(replacement)
	assert.Same(t, replacement, GetGlobalConfig())
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Format: "json", File: "/tmp/x.log"}
	out := lc.ToLoggingConfig()
	assert.Equal(t, "warn", out.Level)
	assert.Equal(t, "json", out.Format)
	assert.Equal(t, "/tmp/x.log", out.File)
}
