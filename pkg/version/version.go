// Package version reports which build of krab is running. The commit is
// taken from an -ldflags override when set, otherwise from the VCS stamp the
// Go toolchain embeds; builds with neither report "dev".
package version

import "runtime/debug"

// AppName is used in version strings and user agents.
const AppName = "krab"

// commit can be injected at build time:
//
//	go build -ldflags "-X github.com/Pavua/krab/pkg/version.commit=$(git rev-parse HEAD)"
var commit string

// GitCommit is the short commit hash identifying this build, with a "-dirty"
// suffix when the working tree had local modifications.
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commit != "" {
		return short(commit)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	var rev string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return "dev"
	}
	rev = short(rev)
	if dirty {
		rev += "-dirty"
	}
	return rev
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "krab/<commit>" for logs and user-agent strings.
func Full() string {
	return AppName + "/" + GitCommit
}
