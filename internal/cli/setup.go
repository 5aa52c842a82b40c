package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/minapp/profilecache/internal/cache"
	"github.com/minapp/profilecache/internal/config"
	"github.com/minapp/profilecache/internal/logging"
	"github.com/minapp/profilecache/internal/profile"
	"github.com/minapp/profilecache/internal/store"
)

// loggingResult wraps the constructed logger state for cleanup.
type loggingResult = logging.LogPathResult

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command) loggingResult {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	// Pick a format for the output actually in use: console for humans,
	// JSON when stderr is redirected.
	if loggingCfg.Format == "" {
		if isTerminal(os.Stderr) {
			loggingCfg.Format = logging.FormatConsole
		} else {
			loggingCfg.Format = logging.FormatJSON
		}
	}

	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(config.GetGlobalConfig()); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	baseLogger = result.Logger
	logger = logging.ComponentLogger(baseLogger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Str(logging.TraceIDField, traceID).Msg("command started")

	return result
}

// buildCache constructs the profile cache from the global configuration and
// command flags. When persistent caching is disabled the cache is backed by
// process memory, so every CLI invocation fetches fresh.
func buildCache(cmd *cobra.Command) (*cache.Single[profile.Profile], error) {
	cfg := config.GetGlobalConfig()

	var st store.Store
	if cfg.Cache.Enabled {
		dir, err := cfg.CacheDir()
		if err != nil {
			return nil, err
		}
		fileStore, err := store.NewFileStore(dir)
		if err != nil {
			return nil, err
		}
		st = fileStore
	} else {
		st = store.NewMemoryStore()
	}

	ttlSeconds := cfg.TTL()
	if flagTTL, _ := cmd.Flags().GetInt("cache-ttl"); flagTTL > 0 {
		if err := cache.ValidateTTLSeconds(flagTTL); err != nil {
			return nil, err
		}
		ttlSeconds = flagTTL
	}

	source := profile.NewHTTPSource[profile.Profile](
		cfg.Profile.Endpoint,
		cfg.Profile.Description,
		cfg.Profile.Token,
	)

	opts := []cache.Option[profile.Profile]{
		cache.WithTTL[profile.Profile](time.Duration(ttlSeconds) * time.Second),
		cache.WithLogger[profile.Profile](logging.ComponentLogger(baseLogger, "cache")),
	}
	if cfg.Cache.Key != "" {
		opts = append(opts, cache.WithKey[profile.Profile](cfg.Cache.Key))
	}

	return cache.NewSingle[profile.Profile](st, source.Fetch, opts...), nil
}
