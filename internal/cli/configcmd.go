package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minapp/profilecache/internal/config"
)

// defaultConfigYAML is the commented configuration written by config init.
const defaultConfigYAML = `# profilecache configuration
cache:
  enabled: true
  ttl_seconds: 86400
  # directory: /path/to/cache
  # key: user_profile

profile:
  # endpoint: https://host.example.com/api/userinfo
  # token: ""
  description: used to personalize your experience

logging:
  level: info
  # format: console | json
  # file: /path/to/profilecache.log
`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(), newConfigPathCmd())
	return cmd
}

// newConfigInitCmd creates the config init command, which writes a default
// config file to the profilecache home directory.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			if _, statErr := os.Stat(path); statErr == nil && !force {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
			}

			if err := config.EnsureHomeDir(); err != nil {
				return err
			}

			if err := os.WriteFile(path, []byte(defaultConfigYAML), 0600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

// newConfigPathCmd creates the config path command.
func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
