package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeManifest writes content to a templatekit.yaml in a temp dir and
// returns the manifest path.
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeManifest(t, `
name: my-templates
version: 1.0.0
description: a repo
instructions:
  - name: style
    file: style.md
bundles:
  - name: all
    instructions: [style]
`)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if doc.Name != "my-templates" {
		t.Errorf("Name = %q, want %q", doc.Name, "my-templates")
	}
	if doc.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", doc.Version, "1.0.0")
	}
	if len(doc.Instructions) != 1 || doc.Instructions[0].File != "style.md" {
		t.Errorf("Instructions = %+v, want one entry with file style.md", doc.Instructions)
	}
	if len(doc.Bundles) != 1 || len(doc.Bundles[0].Instructions) != 1 {
		t.Errorf("Bundles = %+v, want one bundle with one ref", doc.Bundles)
	}
}

func TestLoad_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestFileName)
	_, err := Load(path)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
	if notFound.Path != path {
		t.Errorf("Path = %q, want %q", notFound.Path, path)
	}
}

func TestLoad_Empty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero bytes", ""},
		{"whitespace only", "   \n\n  "},
		{"explicit null", "null\n"},
		{"comment only", "# nothing here\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			_, err := Load(path)
			var empty *EmptyManifestError
			if !errors.As(err, &empty) {
				t.Fatalf("error = %v, want *EmptyManifestError", err)
			}
			if !strings.Contains(err.Error(), "empty") {
				t.Errorf("error message %q does not mention \"empty\"", err.Error())
			}
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"tab indentation", "name: x\n\tversion: broken"},
		{"unclosed bracket", "name: [unclosed"},
		{"scalar document", "just a string, not a mapping"},
		{"wrong field type", "name: ok\nversion: 1.0.0\ninstructions: not-a-list"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.content)
			_, err := Load(path)
			var malformed *MalformedManifestError
			if !errors.As(err, &malformed) {
				t.Fatalf("error = %v, want *MalformedManifestError", err)
			}
		})
	}
}
