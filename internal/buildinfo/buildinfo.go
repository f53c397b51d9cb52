// Package buildinfo carries version metadata stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X orrery/internal/buildinfo.Version=v0.3.0 -X orrery/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, or the commit when no release version is set.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the long form used in start-up logs.
func String() string {
	return fmt.Sprintf("orrery %s (commit %s, built %s)", Short(), Commit, Date)
}
