package version

import (
	"runtime/debug"
	"strings"
)

var (
	// Version is the release version (set via -ldflags).
	Version = ""
	// Commit is the git commit hash (set via -ldflags).
	Commit = ""
)

// Info is the resolved build identity printed by --version.
type Info struct {
	Version string
	Commit  string
	// Dirty is set when the binary was built from a modified work tree.
	Dirty bool
}

// Resolve fills unset ldflags values from the embedded build info.
func Resolve() Info {
	info := Info{Version: Version, Commit: Commit}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = fromBuildInfo(info, bi)
	}
	if info.Version == "" {
		info.Version = "dev"
	}
	return info
}

func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	ldflagsCommit := info.Commit != ""
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if !ldflagsCommit {
				info.Commit = s.Value
			}
		case "vcs.modified":
			// vcs.modified describes vcs.revision, not an ldflags commit.
			if !ldflagsCommit {
				info.Dirty = s.Value == "true"
			}
		}
	}
	return info
}

// String formats info as "version (commit)", with "-dirty" appended to the
// commit for modified builds.
func (i Info) String() string {
	if i.Commit == "" {
		return i.Version
	}
	var b strings.Builder
	b.WriteString(i.Version)
	b.WriteString(" (")
	b.WriteString(abbrev(i.Commit))
	if i.Dirty {
		b.WriteString("-dirty")
	}
	b.WriteByte(')')
	return b.String()
}

// String returns the resolved version line.
func String() string {
	return Resolve().String()
}

// abbrev trims a commit hash to the 12 characters git shows by default.
func abbrev(commit string) string {
	const n = 12
	if len(commit) > n {
		return commit[:n]
	}
	return commit
}
