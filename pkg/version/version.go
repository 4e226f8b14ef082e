// Package version exposes the build version of the retrograde binary.
package version

import (
	"github.com/Masterminds/semver/v3"
)

// version is set at build time via -ldflags "-X github.com/rshade/retrograde/pkg/version.version=v1.2.3".
//
//nolint:gochecknoglobals // Overridden by the linker.
var version = "v0.1.0-dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

// IsRelease reports whether v is a valid semantic version without a
// prerelease suffix.
func IsRelease(v string) bool {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return false
	}
	return parsed.Prerelease() == ""
}

// UserAgent returns the User-Agent sent with outbound requests.
func UserAgent() string {
	return "retrograde/" + GetVersion()
}
