package version

import (
	"runtime/debug"
	"testing"
)

func TestResolve_UsesVCSSettings(t *testing.T) {
	read := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
			{Key: "vcs.modified", Value: "false"},
		}}, true
	}

	b := resolve(read)
	if b.Version != version {
		t.Errorf("expected version %q, got %q", version, b.Version)
	}
	if b.Commit != "abc123" || b.Date != "2026-01-02T03:04:05Z" {
		t.Errorf("vcs settings ignored: %+v", b)
	}
}

func TestResolve_LdflagsWin(t *testing.T) {
	prevCommit, prevDate := commit, date
	commit, date = "release-sha", "2026-02-01"
	t.Cleanup(func() { commit, date = prevCommit, prevDate })

	b := resolve(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "other"}}}, true
	})
	if b.Commit != "release-sha" || b.Date != "2026-02-01" {
		t.Errorf("ldflags values must win: %+v", b)
	}
}

func TestResolve_NoBuildInfo(t *testing.T) {
	b := resolve(func() (*debug.BuildInfo, bool) { return nil, false })
	if b.Commit != unknown || b.Date != unknown {
		t.Errorf("expected unknown placeholders, got %+v", b)
	}
}

func TestString(t *testing.T) {
	b := Build{Version: "v1.2.3", Commit: "abc", Date: "today"}
	if got, want := b.String(), "catalog-service version=v1.2.3 commit=abc date=today"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if GetVersion() == "" || String() == "" {
		t.Error("package helpers must not return empty strings")
	}
}
