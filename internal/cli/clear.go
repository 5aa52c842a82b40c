package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newClearCmd creates the clear command, which drops the cached profile.
func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop the cached profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := buildCache(cmd)
			if err != nil {
				return err
			}

			c.Evict()
			fmt.Fprintln(cmd.OutOrStdout(), "profile cache cleared")
			return nil
		},
	}
}
