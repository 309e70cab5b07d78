package version

import "fmt"

// Version contains the application version information.
// This should be set via build-time ldflags in release builds:
// go build -ldflags "-X github.com/himanshoe/chartytools/internal/version.Version=v1.0.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	return fmt.Sprintf("chartytools %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
