// Package version provides build version information for tag.
// Variables are set at build time via ldflags:
//
//	go build -ldflags="-X github.com/tagtools/tag/internal/version.Version=v0.1.0 \
//	  -X github.com/tagtools/tag/internal/version.GitCommit=abc123"
package version

import (
	"fmt"
	"runtime"
)

// Build information. Set via ldflags at build time.
var (
	Version   = "0.1.0"   // Version tag
	GitCommit = "unknown" // Short git commit hash
)

// String returns a formatted version string suitable for display.
func String() string {
	if GitCommit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, %s %s/%s)", Version, GitCommit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
