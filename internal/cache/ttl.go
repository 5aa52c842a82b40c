package cache

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// TTL configuration constants and defaults.
const (
	// DefaultTTLSeconds is the default record TTL (24 hours).
	DefaultTTLSeconds = 86400

	// DefaultTTL is DefaultTTLSeconds as a time.Duration.
	DefaultTTL = DefaultTTLSeconds * time.Second

	// MinTTLSeconds is the minimum allowed TTL (1 minute).
	MinTTLSeconds = 60

	// MaxTTLSeconds is the maximum allowed TTL (7 days).
	MaxTTLSeconds = 604800

	// minutesPerHour is used for duration formatting calculations.
	minutesPerHour = 60

	// hoursPerDay is used for duration formatting calculations.
	hoursPerDay = 24

	// EnvTTLSeconds is the environment variable for overriding TTL.
	EnvTTLSeconds = "PROFILECACHE_CACHE_TTL_SECONDS"

	// EnvCacheEnabled is the environment variable for enabling/disabling
	// the persistent cache.
	EnvCacheEnabled = "PROFILECACHE_CACHE_ENABLED"

	// EnvCacheDir is the environment variable for the cache directory.
	EnvCacheDir = "PROFILECACHE_CACHE_DIR"
)

// TTL validation errors.
var (
	ErrInvalidTTL = fmt.Errorf("TTL must be between %d and %d seconds", MinTTLSeconds, MaxTTLSeconds)
)

// ValidateTTLSeconds checks that seconds is within the allowed TTL range.
func ValidateTTLSeconds(seconds int) error {
	if seconds < MinTTLSeconds || seconds > MaxTTLSeconds {
		return fmt.Errorf("%w: got %d", ErrInvalidTTL, seconds)
	}
	return nil
}

// TTLFromEnv reads the TTL from the environment or returns the default.
// An unset, unparseable or out-of-range value yields the default.
func TTLFromEnv() int {
	envVal := os.Getenv(EnvTTLSeconds)
	if envVal == "" {
		return DefaultTTLSeconds
	}

	ttl, err := strconv.Atoi(envVal)
	if err != nil {
		return DefaultTTLSeconds
	}

	if ttl < MinTTLSeconds || ttl > MaxTTLSeconds {
		return DefaultTTLSeconds
	}

	return ttl
}

// CacheEnabledFromEnv reads the cache enabled flag from the environment.
// Returns true by default if the variable is not set or unparseable.
func CacheEnabledFromEnv() bool {
	envVal := os.Getenv(EnvCacheEnabled)
	if envVal == "" {
		return true
	}

	enabled, err := strconv.ParseBool(envVal)
	if err != nil {
		return true
	}

	return enabled
}

// CacheDirFromEnv reads the cache directory from the environment.
// Returns an empty string if not set (caller should use its default).
func CacheDirFromEnv() string {
	return os.Getenv(EnvCacheDir)
}

// FormatDuration formats a duration in a human-readable way.
// Examples: "1h", "30m", "5m30s", "1d2h".
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	if d < hoursPerDay*time.Hour {
		hours := int(d.Hours())
		minutes := int(d.Minutes()) % minutesPerHour
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	days := int(d.Hours()) / hoursPerDay
	hours := int(d.Hours()) % hoursPerDay
	if hours == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dd%dh", days, hours)
}

// ParseTTL parses a TTL string in either of two formats:
// - Integer seconds: "86400".
// - Duration string: "24h", "90m", "1h30m".
func ParseTTL(s string) (int, error) {
	// Try parsing as integer seconds first
	if seconds, err := strconv.Atoi(s); err == nil {
		if err := ValidateTTLSeconds(seconds); err != nil {
			return 0, err
		}
		return seconds, nil
	}

	duration, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid TTL format: %w", err)
	}

	seconds := int(duration.Seconds())
	if err := ValidateTTLSeconds(seconds); err != nil {
		return 0, err
	}

	return seconds, nil
}
