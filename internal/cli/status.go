package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/minapp/profilecache/internal/cache"
)

// newStatusCmd creates the status command, which inspects the cached record
// without contacting the host API.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the age and expiry of the cached profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := buildCache(cmd)
			if err != nil {
				return err
			}

			rec, ok := c.Cached()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no cached profile")
				return nil
			}

			now := time.Now()
			age := rec.Age(now)
			fmt.Fprintf(cmd.OutOrStdout(), "written:  %s\n", rec.WrittenAt().Format(time.RFC3339))
			fmt.Fprintf(cmd.OutOrStdout(), "age:      %s\n", cache.FormatDuration(age))
			if rec.Expired(c.TTL(), now) {
				fmt.Fprintln(cmd.OutOrStdout(), "state:    expired")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "expires:  in %s\n", cache.FormatDuration(c.TTL()-age))
			}
			return nil
		},
	}
}
