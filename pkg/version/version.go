// Package version exposes the build version of the profilecache binary.
package version

// Version is the current version of profilecache.
// It is overridden at build time via -ldflags.
//
//nolint:gochecknoglobals // Set by the linker at build time
var Version = "0.1.0-dev"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
