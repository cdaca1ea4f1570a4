package app

import (
	"fmt"
	"runtime/debug"
)

// Release builds stamp these with
// -ldflags "-X github.com/heartmarshall/signdeck-backend/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version line shown in server startup logs, GET /health
// and signdeckctl version. Without ldflags it falls back to the VCS stamp
// that go build embeds.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "unknown" {
		if rev, at, ok := vcsStamp(); ok {
			commit, built = rev, at
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func vcsStamp() (rev, at string, ok bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	if rev == "" {
		return "", "", false
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if at == "" {
		at = "unknown"
	}
	return rev, at, true
}
