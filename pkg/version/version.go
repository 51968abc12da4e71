// Package version exposes the build metadata of the scaffold binary.
package version

import "fmt"

// Build-time variables injected via -ldflags:
//
//	-X github.com/modu-ai/scaffold/pkg/version.Version=v1.2.3
var (
	Version = "v0.1.0-dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with its commit and build date.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
