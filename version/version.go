package version

import (
	"runtime/debug"
	"strings"
	"time"

	"github.com/kbukum/reddish/datetime"
)

// Set at build time with -ldflags -X.
var (
	Version   = "dev"
	GitCommit = ""
	GitBranch = ""
	BuildTime = ""
	GoVersion = ""
)

const shortCommitLen = 7

// Info describes the running binary.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit,omitempty"`
	GitBranch string    `json:"git_branch,omitempty"`
	BuildTime string    `json:"build_time,omitempty"`
	GoVersion string    `json:"go_version"`
	BuildDate time.Time `json:"build_date,omitzero"`
	IsRelease bool      `json:"is_release"`
	IsDirty   bool      `json:"is_dirty"`
}

// GetVersionInfo combines the link-time variables with debug.ReadBuildInfo.
// BuildTime accepts any layout datetime.ParseDate understands.
func GetVersionInfo() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: shortCommit(GitCommit),
		GitBranch: GitBranch,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}

	if t, ok := datetime.ParseDate(BuildTime); ok {
		info.BuildDate = t
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if info.GoVersion == "" {
			info.GoVersion = buildInfo.GoVersion
		}
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = shortCommit(setting.Value)
				}
			case "vcs.modified":
				info.IsDirty = setting.Value == "true"
			case "vcs.time":
				if info.BuildDate.IsZero() {
					if t, ok := datetime.ParseDate(setting.Value); ok {
						info.BuildDate = t
						info.BuildTime = setting.Value
					}
				}
			}
		}
	}

	return info
}

// Built describes the build date relative to now, or "" when unknown.
func (i *Info) Built() string {
	if i.BuildDate.IsZero() {
		return ""
	}
	return "built " + datetime.TimeAgo(i.BuildDate)
}

// GetShortVersion returns "<version>-<commit>[-dirty]", or just the version
// when the commit is unknown.
func GetShortVersion() string {
	info := GetVersionInfo()
	if info.GitCommit == "" {
		return info.Version
	}
	s := info.Version + "-" + info.GitCommit
	if info.IsDirty {
		s += "-dirty"
	}
	return s
}

// GetFullVersion adds non-default branches and the build date to the short
// form, for example "1.0.0-abc1234-feature/x (built 2024-01-15T10:30:00Z)".
func GetFullVersion() string {
	info := GetVersionInfo()
	parts := []string{info.Version}
	if info.GitCommit != "" {
		parts = append(parts, info.GitCommit)
	}
	if info.GitBranch != "" && info.GitBranch != "main" && info.GitBranch != "master" {
		parts = append(parts, info.GitBranch)
	}
	if info.IsDirty {
		parts = append(parts, "dirty")
	}
	v := strings.Join(parts, "-")
	if !info.BuildDate.IsZero() {
		v += " (built " + datetime.FormatDateISO(info.BuildDate) + ")"
	}
	return v
}

func shortCommit(c string) string {
	if len(c) > shortCommitLen {
		return c[:shortCommitLen]
	}
	return c
}
