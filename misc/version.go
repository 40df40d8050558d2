// Package misc keeps build related information.
package misc

import (
	"runtime/debug"
)

const appName = "tokconv"

// set by the linker: -X tokconv/misc.version=... -X tokconv/misc.githash=...
var (
	version = "dev"
	githash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns commit hash either injected at link time or recorded by
// the go toolchain in build info.
func GetGitHash() string {
	if len(githash) > 0 {
		return githash
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return "unknown"
}
