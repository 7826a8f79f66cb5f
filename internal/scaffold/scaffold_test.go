package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/templatekit-labs/templatekit/internal/manifest"
)

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "team-templates")

	result, err := Generate(NewData("team-templates", "", "Platform Team"), out)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
	if len(result.Files) != 3 {
		t.Errorf("Files = %v, want 3 entries", result.Files)
	}

	// The generated repository must parse cleanly.
	repo, err := manifest.ParseRepository(out)
	if err != nil {
		t.Fatalf("generated repo does not parse: %v", err)
	}
	if repo.Name != "team-templates" {
		t.Errorf("Name = %q, want %q", repo.Name, "team-templates")
	}
	if repo.Author != "Platform Team" {
		t.Errorf("Author = %q, want %q", repo.Author, "Platform Team")
	}
	if len(repo.Instructions) != 2 || len(repo.Bundles) != 1 {
		t.Errorf("instructions/bundles = %d/%d, want 2/1", len(repo.Instructions), len(repo.Bundles))
	}
}

func TestGenerate_NoAuthor(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x")
	if _, err := Generate(NewData("x", "custom description", ""), out); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	repo, err := manifest.ParseRepository(out)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if repo.Author != "" {
		t.Errorf("Author = %q, want empty", repo.Author)
	}
	if repo.Description != "custom description" {
		t.Errorf("Description = %q, want %q", repo.Description, "custom description")
	}
}

func TestGenerate_RefusesNonEmptyDir(t *testing.T) {
	out := t.TempDir()
	if err := os.WriteFile(filepath.Join(out, "keep.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Generate(NewData("x", "", ""), out); err == nil {
		t.Fatal("expected error for non-empty output directory")
	}
}

func TestNewData_DefaultDescription(t *testing.T) {
	d := NewData("my-repo", "", "")
	if d.Description == "" {
		t.Error("expected derived description, got empty")
	}
	if d.Version != "0.1.0" {
		t.Errorf("Version = %q, want 0.1.0", d.Version)
	}
}
