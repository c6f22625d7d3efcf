package version

import (
	"runtime/debug"
	"testing"

	"terminus-veil/internal/infrastructure/storage"
	"terminus-veil/pkg/api"
)

func withBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	old := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	t.Cleanup(func() { readBuildInfo = old })
}

func withLdflags(t *testing.T, build, commit string) {
	t.Helper()
	oldBuild, oldCommit := Build, Commit
	Build, Commit = build, commit
	t.Cleanup(func() { Build, Commit = oldBuild, oldCommit })
}

func TestGet(t *testing.T) {
	vcs := &debug.BuildInfo{
		GoVersion: "go1.24.3",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name   string
		build  string
		commit string
		bi     *debug.BuildInfo
		want   Info
	}{
		{
			name: "no metadata",
			want: Info{Build: "dev"},
		},
		{
			name: "vcs fallback",
			bi:   vcs,
			want: Info{Build: "dev", Commit: "0123456789ab", Modified: true, GoVersion: "go1.24.3"},
		},
		{
			name:   "ldflags win over vcs",
			build:  "2026.10",
			commit: "feedbee",
			bi:     vcs,
			want:   Info{Build: "2026.10", Commit: "feedbee", Modified: true, GoVersion: "go1.24.3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withLdflags(t, tt.build, tt.commit)
			withBuildInfo(t, tt.bi)

			tt.want.Protocol = api.ProtocolVersion
			tt.want.ReplayFormat = storage.FormatVersion
			if got := Get(); got != tt.want {
				t.Errorf("Get() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInfo_String(t *testing.T) {
	info := Info{Build: "dev", Protocol: 1, ReplayFormat: 1}
	if got, want := info.String(), "Terminus Veil dev commit[unknown] protocol v1 replay v1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	info.Commit, info.Modified = "abc", true
	if got, want := info.String(), "Terminus Veil dev commit[abc+dirty] protocol v1 replay v1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
