package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newGetCmd creates the get command, the sole read path for the profile.
func newGetCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch the user profile, serving it from cache when fresh",
		Long: "Fetch the user profile. A cached profile younger than the TTL is returned " +
			"without contacting the host API; otherwise a fresh profile is fetched and cached. " +
			"On fetch failure the command degrades to no output instead of erroring.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := buildCache(cmd)
			if err != nil {
				return err
			}

			p, ok := c.Get(cmd.Context(), refresh)
			if !ok {
				// Failure is already logged; degrade to "no personalization".
				fmt.Fprintln(cmd.ErrOrStderr(), "no profile available")
				return nil
			}

			var out bytes.Buffer
			if err := json.Indent(&out, p, "", "  "); err != nil {
				// Not JSON-indentable payloads are printed as-is.
				fmt.Fprintln(cmd.OutOrStdout(), string(p))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass the cache and fetch a fresh profile")

	return cmd
}
