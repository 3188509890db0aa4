// Package version derives the build version stamped into pipeline run records
// and user-agent strings.
package version

import "runtime/debug"

// AppName prefixes every version string.
const AppName = "civiclens"

// commitOverride is set with -ldflags for container builds that strip .git.
var commitOverride string

// GitCommit is the short commit hash, or "dev" outside a VCS build.
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commitOverride != "" {
		return shorten(commitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shorten(s.Value)
			}
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "civiclens/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
