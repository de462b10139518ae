package version

import "github.com/arthur-debert/hashdo/pkg/types"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/hashdo/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/hashdo/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/hashdo/internal/version.Date={{.Date}}
)

// Get returns the build information of the running binary
func Get() *types.VersionInfo {
	return &types.VersionInfo{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}
}
