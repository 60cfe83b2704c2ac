// Package version carries build metadata stamped in at link time.
package version

// Build information set by ldflags, for example
// -X github.com/arthur-debert/ansiprint/internal/version.Version=v1.2.0
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
