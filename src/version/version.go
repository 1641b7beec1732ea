// Package version reports the build identity of the dock binary.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// These variables are injected at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns a human-readable version string. When Version parses
// as a release tag, the returned string includes its normalized form so
// build tooling and end users see the same canonical version even if
// the injected string carried a "v" prefix or metadata.
func String() string {
	if v, err := semver.NewVersion(Version); err == nil {
		return fmt.Sprintf("dock %s (%s, %s)", v.String(), Commit, BuildDate)
	}
	return fmt.Sprintf("dock %s (%s, %s)", Version, Commit, BuildDate)
}
