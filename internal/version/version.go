// Package version carries build metadata injected with ldflags:
//
//	go build -ldflags="-X github.com/csheth/newsreframer/internal/version.Version=v0.3.0 \
//	                   -X github.com/csheth/newsreframer/internal/version.Commit=abc123"
package version

import "runtime/debug"

var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version != "" && Commit != "" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			Version = info.Main.Version
		}
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && Commit == "" {
				Commit = setting.Value
				if len(Commit) > 12 {
					Commit = Commit[:12]
				}
			}
		}
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// String renders the version line printed by the CLI.
func String() string {
	return Version + " (commit: " + Commit + ")"
}
