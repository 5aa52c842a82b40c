// Package cli implements the profilecache command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/minapp/profilecache/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// baseLogger is the untagged logger used to derive component loggers.
var baseLogger zerolog.Logger //nolint:gochecknoglobals // Shared root for component loggers

// NewRootCmd creates the root Cobra command for the profilecache CLI.
// It wires up configuration loading, logging, and the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *loggingResult

	cmd := &cobra.Command{
		Use:     "profilecache",
		Short:   "Cache user profiles fetched from a host API",
		Long:    "profilecache fetches a user profile from a host API and serves it from a local time-expiring cache",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Validate cache-ttl up front (negative values cause undefined expiry behavior)
			cacheTTL, _ := cmd.Flags().GetInt("cache-ttl")
			if cacheTTL < 0 {
				return fmt.Errorf("cache-ttl must be >= 0, got %d", cacheTTL)
			}

			if err := loadConfig(cmd); err != nil {
				return err
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logResult != nil {
				return logResult.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default $PROFILECACHE_HOME/config.yaml)")
	cmd.PersistentFlags().
		Int("cache-ttl", 0, "cache TTL in seconds (0 = use config default, overrides config file and env var)")
	cmd.AddCommand(newGetCmd(), newClearCmd(), newStatusCmd(), newConfigCmd())

	return cmd
}

// loadConfig initializes the global configuration, honouring an explicit
// --config path when given.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		config.InitGlobalConfig()
		return nil
	}

	cfg, err := config.NewFromFile(path)
	if err != nil {
		return err
	}
	config.SetGlobalConfig(cfg)
	return nil
}

const rootCmdExample = `  # Fetch the user profile, serving it from cache when fresh
  profilecache get

  # Force a refresh, bypassing a valid cached profile
  profilecache get --refresh

  # Show the age and expiry of the cached profile
  profilecache status

  # Drop the cached profile
  profilecache clear

  # Write a default configuration file
  profilecache config init`
