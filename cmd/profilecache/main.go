// Command profilecache fetches a user profile from a host API and serves it
// from a local time-expiring cache.
package main

import (
	"fmt"
	"os"

	"github.com/minapp/profilecache/internal/cli"
	"github.com/minapp/profilecache/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the root command and returns its error, keeping main itself
// trivial and testable.
func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}
