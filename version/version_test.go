package version

import (
	"strings"
	"testing"
	"time"
)

func setBuild(t *testing.T, version, commit, branch, buildTime, goVersion string) {
	t.Helper()
	origVersion, origCommit, origBranch, origBuildTime, origGoVersion :=
		Version, GitCommit, GitBranch, BuildTime, GoVersion
	t.Cleanup(func() {
		Version = origVersion
		GitCommit = origCommit
		GitBranch = origBranch
		BuildTime = origBuildTime
		GoVersion = origGoVersion
	})
	Version, GitCommit, GitBranch, BuildTime, GoVersion = version, commit, branch, buildTime, goVersion
}

func TestGetVersionInfoDefaults(t *testing.T) {
	setBuild(t, "dev", "", "", "", "")

	info := GetVersionInfo()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
	if info.GoVersion == "" {
		t.Error("expected Go version from build info")
	}
}

func TestGetVersionInfoWithBuildTime(t *testing.T) {
	setBuild(t, "1.0.0", "abc1234def5678", "main", "2024-01-15T10:30:00Z", "go1.26.0")

	info := GetVersionInfo()
	if info.Version != "1.0.0" {
		t.Errorf("expected '1.0.0', got %q", info.Version)
	}
	if !info.IsRelease {
		t.Error("1.0.0 should be a release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected commit shortened to 'abc1234', got %q", info.GitCommit)
	}
	if info.GoVersion != "go1.26.0" {
		t.Errorf("expected 'go1.26.0', got %q", info.GoVersion)
	}
	want := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
	if !info.BuildDate.Equal(want) {
		t.Errorf("BuildDate = %v, want %v", info.BuildDate, want)
	}
}

func TestGetVersionInfoLooseBuildTime(t *testing.T) {
	setBuild(t, "1.0.0", "abc1234", "", "2024-01-15 10:30:00", "go1.26.0")

	info := GetVersionInfo()
	if info.BuildDate.Year() != 2024 || info.BuildDate.Hour() != 10 {
		t.Errorf("expected BuildDate parsed from plain layout, got %v", info.BuildDate)
	}
}

func TestGetVersionInfoDirtyVersion(t *testing.T) {
	setBuild(t, "1.0.0-dirty", "", "", "", "")

	if GetVersionInfo().IsRelease {
		t.Error("dirty version should not be a release")
	}
}

func TestInfoBuilt(t *testing.T) {
	info := &Info{BuildDate: time.Now().Add(-3 * 24 * time.Hour)}
	if got := info.Built(); got != "built 3 days ago" {
		t.Errorf("Built() = %q, want %q", got, "built 3 days ago")
	}
	if got := (&Info{}).Built(); got != "" {
		t.Errorf("Built() with zero date = %q, want empty", got)
	}
}

func TestGetShortVersion(t *testing.T) {
	tests := []struct {
		name, version, commit, want string
	}{
		{"dev without commit", "dev", "", "dev"},
		{"release with commit", "1.0.0", "abc1234", "1.0.0-abc1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuild(t, tt.version, tt.commit, "", "2024-01-01T00:00:00Z", "go1.26.0")
			if got := GetShortVersion(); !strings.HasPrefix(got, tt.want) {
				t.Errorf("GetShortVersion() = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestGetFullVersion(t *testing.T) {
	tests := []struct {
		name     string
		branch   string
		contains []string
		excludes []string
	}{
		{"main branch", "main", []string{"1.0.0-abc1234", "(built 2024-01-15T10:30:00Z)"}, []string{"main"}},
		{"feature branch", "feature/new-thing", []string{"1.0.0-abc1234-feature/new-thing"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuild(t, "1.0.0", "abc1234", tt.branch, "2024-01-15T10:30:00Z", "go1.26.0")

			fv := GetFullVersion()
			for _, s := range tt.contains {
				if !strings.Contains(fv, s) {
					t.Errorf("GetFullVersion() = %q, want it to contain %q", fv, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(fv, s) {
					t.Errorf("GetFullVersion() = %q, must not contain %q", fv, s)
				}
			}
		})
	}
}

func TestGetFullVersionNoCommit(t *testing.T) {
	setBuild(t, "dev", "", "", "", "")

	if fv := GetFullVersion(); !strings.HasPrefix(fv, "dev") {
		t.Errorf("expected full version to start with 'dev', got %q", fv)
	}
}
