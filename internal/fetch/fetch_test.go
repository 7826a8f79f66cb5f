package fetch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRepoNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://github.com/acme/ai-templates.git", "ai-templates"},
		{"https://github.com/acme/ai-templates", "ai-templates"},
		{"https://github.com/acme/ai-templates/", "ai-templates"},
		{"git@github.com:acme/team-rules.git", "team-rules"},
		{"ssh://git@host/org/nested/repo.git", "repo"},
	}
	for _, tt := range tests {
		if got := RepoNameFromURL(tt.url); got != tt.want {
			t.Errorf("RepoNameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestFreshnessMarker_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	WriteFreshnessMarker(dir)
	got := ReadFreshnessMarker(dir)
	if got.IsZero() {
		t.Fatal("marker read back as zero time")
	}
	if time.Since(got) > time.Minute {
		t.Errorf("marker timestamp too old: %v", got)
	}
}

func TestReadFreshnessMarker_Missing(t *testing.T) {
	if got := ReadFreshnessMarker(t.TempDir()); !got.IsZero() {
		t.Errorf("missing marker = %v, want zero time", got)
	}
}

func TestReadFreshnessMarker_Garbage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, freshnessFile), []byte("not-a-number"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := ReadFreshnessMarker(dir); !got.IsZero() {
		t.Errorf("garbage marker = %v, want zero time", got)
	}
}

func TestIsStale(t *testing.T) {
	dir := t.TempDir()

	// No marker at all.
	if !IsStale(dir, time.Hour) {
		t.Error("IsStale with no marker = false, want true")
	}

	WriteFreshnessMarker(dir)
	if IsStale(dir, time.Hour) {
		t.Error("IsStale right after write = true, want false")
	}
	if !IsStale(dir, -time.Second) {
		t.Error("IsStale with negative maxAge = false, want true")
	}
}
