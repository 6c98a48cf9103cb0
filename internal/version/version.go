// Package version provides version information for zrpcd.
// The Version variable is set at build time via ldflags.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the current version of zrpcd.
// Set at build time via: -ldflags "-X github.com/xdg/zrpcd/internal/version.Version=v1.0.0"
// Defaults to "dev" for development builds.
var Version = "dev"

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Revision returns the VCS revision the binary was built from, shortened
// to 12 characters, or "" when unknown.
func Revision() string {
	info, ok := readBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return ""
}

// String describes the build for --version and "show version".
func String() string {
	if rev := Revision(); rev != "" {
		return fmt.Sprintf("%s (%s, %s)", Version, rev, runtime.Version())
	}
	return fmt.Sprintf("%s (%s)", Version, runtime.Version())
}
