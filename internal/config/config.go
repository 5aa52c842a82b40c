// Package config loads and holds the profilecache configuration: cache
// behaviour, host API access, and logging. Values come from the config file
// in the profilecache home directory, overridden by environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/minapp/profilecache/internal/cache"
)

// CacheConfig controls the persistent profile cache.
type CacheConfig struct {
	// Enabled controls whether profiles are cached on disk. When false,
	// the cache lives in process memory only.
	Enabled bool `yaml:"enabled"`

	// TTLSeconds is the record time-to-live in seconds.
	TTLSeconds int `yaml:"ttl_seconds"`

	// Directory is the cache directory. Empty means <home>/cache.
	Directory string `yaml:"directory"`

	// Key is the fixed storage key. Empty means the default key.
	Key string `yaml:"key"`
}

// ProfileConfig describes the host API the profile is fetched from.
type ProfileConfig struct {
	// Endpoint is the host API URL returning the user profile as JSON.
	Endpoint string `yaml:"endpoint"`

	// Token is an optional OAuth2 bearer token for the host API.
	Token string `yaml:"token"`

	// Description is the prompt string forwarded to the host with each
	// fetch, shown to the user when consent is requested.
	Description string `yaml:"description"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Config is the full profilecache configuration.
type Config struct {
	Cache   CacheConfig   `yaml:"cache"`
	Profile ProfileConfig `yaml:"profile"`
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the built-in defaults: persistent caching with a
// 24-hour TTL, info-level console logging, no host endpoint configured.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: cache.DefaultTTLSeconds,
		},
		Profile: ProfileConfig{
			Description: "used to personalize your experience",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// New builds the effective configuration: defaults, then the config file in
// the profilecache home directory (if present), then environment overrides.
func New() *Config {
	cfg := DefaultConfig()

	if path, err := DefaultConfigPath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			// A broken config file falls back to defaults rather than
			// aborting; the load error is surfaced via LoadFromFile for
			// callers that need it.
			_ = LoadFromFile(cfg, path)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// NewFromFile builds the configuration from an explicit file path, with
// environment overrides applied on top. The file must exist and parse.
func NewFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadFromFile(cfg, path); err != nil {
		return nil, err
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

// LoadFromFile merges the YAML file at path onto cfg.
func LoadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies PROFILECACHE_* environment variables on top of
// the loaded configuration.
func (c *Config) applyEnvOverrides() {
	if os.Getenv(cache.EnvTTLSeconds) != "" {
		c.Cache.TTLSeconds = cache.TTLFromEnv()
	}
	if os.Getenv(cache.EnvCacheEnabled) != "" {
		c.Cache.Enabled = cache.CacheEnabledFromEnv()
	}
	if dir := cache.CacheDirFromEnv(); dir != "" {
		c.Cache.Directory = dir
	}
}

// TTL returns the configured record TTL, falling back to the default when
// the configured value is out of range.
func (c *Config) TTL() int {
	if err := cache.ValidateTTLSeconds(c.Cache.TTLSeconds); err != nil {
		return cache.DefaultTTLSeconds
	}
	return c.Cache.TTLSeconds
}

// CacheDir returns the effective cache directory.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Directory != "" {
		return c.Cache.Directory, nil
	}
	home, err := GetHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "cache"), nil
}

// GetHomeDir returns the profilecache home directory. PROFILECACHE_HOME
// takes precedence; the default is ~/.profilecache.
func GetHomeDir() (string, error) {
	if pcHome := os.Getenv("PROFILECACHE_HOME"); pcHome != "" {
		return pcHome, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".profilecache"), nil
}

// DefaultConfigPath returns the path of the default config file.
func DefaultConfigPath() (string, error) {
	home, err := GetHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}

// EnsureHomeDir ensures the profilecache home directory exists.
func EnsureHomeDir() error {
	dir, err := GetHomeDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// EnsureLogDir ensures the directory for the configured log file exists.
// If no log file is configured, it does nothing.
func EnsureLogDir(c *Config) error {
	if c.Logging.File == "" {
		return nil
	}
	logDir := filepath.Dir(c.Logging.File)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}
