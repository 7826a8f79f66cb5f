package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// writeRepo materializes a repository root with the given manifest and
// instruction files. Keys of files are root-relative paths.
func writeRepo(t *testing.T, manifest string, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ManifestFileName), []byte(manifest), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("creating dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", rel, err)
		}
	}
	return root
}

func TestParseRepository_Valid(t *testing.T) {
	repo, err := ParseRepository(filepath.Join("testdata", "valid-repo"))
	if err != nil {
		t.Fatalf("ParseRepository error: %v", err)
	}

	if repo.Name != "python-essentials" {
		t.Errorf("Name = %q, want %q", repo.Name, "python-essentials")
	}
	if repo.Version != "1.2.0" {
		t.Errorf("Version = %q, want %q", repo.Version, "1.2.0")
	}
	if repo.Author != "Platform Team" {
		t.Errorf("Author = %q, want %q", repo.Author, "Platform Team")
	}

	if len(repo.Instructions) != 2 {
		t.Fatalf("Instructions len = %d, want 2", len(repo.Instructions))
	}
	if repo.Instructions[0].Name != "python-style" || repo.Instructions[1].Name != "testing-guide" {
		t.Errorf("instruction order = [%s %s], want [python-style testing-guide]",
			repo.Instructions[0].Name, repo.Instructions[1].Name)
	}

	if len(repo.Bundles) != 1 {
		t.Fatalf("Bundles len = %d, want 1", len(repo.Bundles))
	}
	want := []string{"python-style", "testing-guide"}
	if !reflect.DeepEqual(repo.Bundles[0].Instructions, want) {
		t.Errorf("bundle refs = %v, want %v", repo.Bundles[0].Instructions, want)
	}

	// Checksums must match the digest of each file's bytes.
	for _, inst := range repo.Instructions {
		data, err := os.ReadFile(filepath.Join("testdata", "valid-repo", filepath.FromSlash(inst.File)))
		if err != nil {
			t.Fatalf("reading %s: %v", inst.File, err)
		}
		if inst.Checksum != Checksum(data) {
			t.Errorf("instruction %s checksum = %s, want %s", inst.Name, inst.Checksum, Checksum(data))
		}
		if len(inst.Checksum) != 64 {
			t.Errorf("instruction %s checksum length = %d, want 64", inst.Name, len(inst.Checksum))
		}
	}
}

func TestParseRepository_Idempotent(t *testing.T) {
	root := filepath.Join("testdata", "valid-repo")
	first, err := ParseRepository(root)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	second, err := ParseRepository(root)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	for i := range first.Instructions {
		if first.Instructions[i].Checksum != second.Instructions[i].Checksum {
			t.Errorf("instruction %s checksum changed across parses", first.Instructions[i].Name)
		}
	}
}

func TestParseRepository_ValidationErrors(t *testing.T) {
	const body = "content\n"

	tests := []struct {
		name     string
		manifest string
		files    map[string]string
		wantMsg  string
	}{
		{
			name:     "missing repository name",
			manifest: "version: 1.0.0\n",
			wantMsg:  "repository is missing required 'name' field",
		},
		{
			name:     "missing repository version",
			manifest: "name: repo\n",
			wantMsg:  "repository is missing required 'version' field",
		},
		{
			name: "instruction missing name",
			manifest: `name: repo
version: 1.0.0
instructions:
  - file: a.md
`,
			wantMsg: "instruction missing required 'name' field",
		},
		{
			name: "instruction missing file",
			manifest: `name: repo
version: 1.0.0
instructions:
  - name: style
`,
			wantMsg: "instruction 'style' missing 'file' field",
		},
		{
			name: "duplicate instruction name",
			manifest: `name: repo
version: 1.0.0
instructions:
  - name: style
    file: a.md
  - name: style
    file: b.md
`,
			files:   map[string]string{"a.md": body, "b.md": body},
			wantMsg: "duplicate instruction name 'style'",
		},
		{
			name: "bundle missing name",
			manifest: `name: repo
version: 1.0.0
bundles:
  - instructions: [style]
`,
			wantMsg: "bundle missing required 'name' field",
		},
		{
			name: "duplicate bundle name",
			manifest: `name: repo
version: 1.0.0
instructions:
  - name: style
    file: a.md
bundles:
  - name: all
    instructions: [style]
  - name: all
    instructions: [style]
`,
			files:   map[string]string{"a.md": body},
			wantMsg: "duplicate bundle name 'all'",
		},
		{
			name: "empty bundle",
			manifest: `name: repo
version: 1.0.0
bundles:
  - name: empty-bundle
    instructions: []
`,
			wantMsg: "bundle 'empty-bundle' has no instructions",
		},
		{
			name: "bundle with absent instructions key",
			manifest: `name: repo
version: 1.0.0
bundles:
  - name: bare
`,
			wantMsg: "bundle 'bare' has no instructions",
		},
		{
			name: "unknown bundle reference",
			manifest: `name: repo
version: 1.0.0
instructions:
  - name: style
    file: a.md
bundles:
  - name: stack
    instructions: [style, missing-one]
`,
			files:   map[string]string{"a.md": body},
			wantMsg: "bundle 'stack' references unknown instruction 'missing-one'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeRepo(t, tt.manifest, tt.files)
			_, err := ParseRepository(root)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseRepository_InstructionFileMissing(t *testing.T) {
	root := writeRepo(t, `name: repo
version: 1.0.0
instructions:
  - name: style
    file: docs/style.md
`, nil)

	_, err := ParseRepository(root)
	var readErr *FileReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("error = %v, want *FileReadError", err)
	}
	if want := "instruction file not found: docs/style.md"; err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestParseRepository_InstructionFileIsDirectory(t *testing.T) {
	root := writeRepo(t, `name: repo
version: 1.0.0
instructions:
  - name: style
    file: docs
`, map[string]string{"docs/placeholder.md": "x"})

	_, err := ParseRepository(root)
	var readErr *FileReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("error = %v, want *FileReadError", err)
	}
}

func TestParseRepository_ManifestMissing(t *testing.T) {
	_, err := ParseRepository(t.TempDir())
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
}

func TestParseRepository_NoInstructionsOrBundles(t *testing.T) {
	root := writeRepo(t, "name: bare-repo\nversion: 0.1.0\n", nil)
	repo, err := ParseRepository(root)
	if err != nil {
		t.Fatalf("ParseRepository error: %v", err)
	}
	if len(repo.Instructions) != 0 || len(repo.Bundles) != 0 {
		t.Errorf("expected empty instructions and bundles, got %d/%d",
			len(repo.Instructions), len(repo.Bundles))
	}
}

func TestParseRepository_TagsDeduped(t *testing.T) {
	root := writeRepo(t, `name: repo
version: 1.0.0
instructions:
  - name: style
    file: a.md
    tags: [go, style, go]
`, map[string]string{"a.md": "content"})

	repo, err := ParseRepository(root)
	if err != nil {
		t.Fatalf("ParseRepository error: %v", err)
	}
	want := []string{"go", "style"}
	if !reflect.DeepEqual(repo.Instructions[0].Tags, want) {
		t.Errorf("Tags = %v, want %v", repo.Instructions[0].Tags, want)
	}
}

func TestRepository_Lookups(t *testing.T) {
	repo, err := ParseRepository(filepath.Join("testdata", "valid-repo"))
	if err != nil {
		t.Fatalf("ParseRepository error: %v", err)
	}

	if _, ok := repo.Instruction("python-style"); !ok {
		t.Error("Instruction(python-style) not found")
	}
	if _, ok := repo.Instruction("nope"); ok {
		t.Error("Instruction(nope) unexpectedly found")
	}
	if _, ok := repo.Bundle("python-stack"); !ok {
		t.Error("Bundle(python-stack) not found")
	}
	if _, ok := repo.Bundle("nope"); ok {
		t.Error("Bundle(nope) unexpectedly found")
	}
}
