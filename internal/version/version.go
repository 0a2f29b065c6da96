// Package version provides build information for the server.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Info contains version and build information.
type Info struct {
	Version     string `json:"version"`
	GoVersion   string `json:"go_version"`
	VCSRevision string `json:"vcs_revision,omitempty"`
	VCSTime     string `json:"vcs_time,omitempty"`
}

// Get returns the current version and build information.
func Get() Info {
	info := Info{Version: Version}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				info.VCSRevision = setting.Value
			case "vcs.time":
				info.VCSTime = setting.Value
			}
		}
	}

	return info
}

// String returns a human-readable version string.
func (i Info) String() string {
	parts := []string{fmt.Sprintf("Version: %s", i.Version), fmt.Sprintf("Go: %s", i.GoVersion)}

	if i.VCSRevision != "" {
		rev := i.VCSRevision
		if len(rev) > 8 {
			rev = rev[:8]
		}
		parts = append(parts, fmt.Sprintf("Commit: %s", rev))
	}

	return strings.Join(parts, ", ")
}
