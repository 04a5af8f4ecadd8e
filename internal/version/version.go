// Package version holds build-time identity, overridden via -ldflags at
// release build time (e.g. -X github.com/corpusgraph/corpusgraph/internal/version.GitCommit=...).
package version

var (
	GitRelease    = "dev"
	GitCommit     = "unknown"
	GitCommitDate = "unknown"
	GoInfo        = "unknown"
)
