package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/templatekit-labs/templatekit/internal/manifest"
)

//go:embed scaffolds
var scaffoldFS embed.FS

// Data holds the template variables available to scaffold templates.
type Data struct {
	Name        string // repository name, e.g. "team-templates"
	Description string
	Author      string
	Version     string // starter version, e.g. "0.1.0"
	Year        int
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// NewData creates scaffold data with derived defaults populated.
func NewData(name, description, author string) *Data {
	if description == "" {
		description = fmt.Sprintf("Instruction templates for %s", name)
	}
	return &Data{
		Name:        name,
		Description: description,
		Author:      author,
		Version:     "0.1.0",
		Year:        time.Now().Year(),
	}
}

// Generate creates a starter template repository in outputDir from the
// embedded scaffold set. The directory must be empty or absent. After
// writing, the generated repository is parsed to confirm it validates;
// any problem is reported as a warning rather than a failure.
func Generate(data *Data, outputDir string) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// Refuse to scribble over existing work.
	existing, err := os.ReadDir(outputDir)
	if err == nil && len(existing) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	result := &Result{OutputDir: outputDir}

	const root = "scaffolds/repo"
	err = fs.WalkDir(scaffoldFS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		tmplBytes, err := fs.ReadFile(scaffoldFS, path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		// Strip .tmpl extension for the output filename.
		outRel := strings.TrimSuffix(rel, ".tmpl")
		outPath := filepath.Join(outputDir, filepath.FromSlash(outRel))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", outRel, err)
		}

		tmpl, err := template.New(filepath.Base(path)).Parse(string(tmplBytes))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("executing template %s: %w", path, err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, filepath.ToSlash(outRel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sanity-check the generated repository end to end.
	if _, err := manifest.ParseRepository(outputDir); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("generated repository does not validate: %v", err))
	}

	return result, nil
}
