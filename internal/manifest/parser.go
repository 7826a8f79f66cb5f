package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ParseRepository loads and validates the manifest at root/templatekit.yaml
// and returns the assembled Repository. Validation is strict and fail-fast:
// the first violated rule aborts the parse, so callers never see a partially
// constructed model. Checksums are computed eagerly so every returned
// Instruction carries a stable content identity.
func ParseRepository(root string) (*Repository, error) {
	doc, err := Load(filepath.Join(root, ManifestFileName))
	if err != nil {
		return nil, err
	}
	return buildRepository(root, doc)
}

// buildRepository walks the raw document in declaration order, enforcing
// required fields, name uniqueness, file existence, bundle non-emptiness,
// and bundle-to-instruction referential integrity.
func buildRepository(root string, doc *Document) (*Repository, error) {
	if strings.TrimSpace(doc.Name) == "" {
		return nil, &ValidationError{Reason: "repository is missing required 'name' field"}
	}
	if strings.TrimSpace(doc.Version) == "" {
		return nil, &ValidationError{Reason: "repository is missing required 'version' field"}
	}

	instructions := make([]Instruction, 0, len(doc.Instructions))
	seen := make(map[string]bool, len(doc.Instructions))

	for _, raw := range doc.Instructions {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			return nil, &ValidationError{Reason: "instruction missing required 'name' field"}
		}
		if strings.TrimSpace(raw.File) == "" {
			return nil, &ValidationError{Reason: fmt.Sprintf("instruction '%s' missing 'file' field", name)}
		}
		if seen[name] {
			return nil, &ValidationError{Reason: fmt.Sprintf("duplicate instruction name '%s'", name)}
		}
		seen[name] = true

		path := filepath.Join(root, filepath.FromSlash(raw.File))
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return nil, &FileReadError{File: raw.File, Err: err}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &FileReadError{File: raw.File, Err: err}
		}

		instructions = append(instructions, Instruction{
			Name:        name,
			Description: raw.Description,
			File:        raw.File,
			Tags:        dedupeTags(raw.Tags),
			Checksum:    Checksum(data),
		})
	}

	bundles := make([]Bundle, 0, len(doc.Bundles))
	seenBundles := make(map[string]bool, len(doc.Bundles))

	for _, raw := range doc.Bundles {
		name := strings.TrimSpace(raw.Name)
		if name == "" {
			return nil, &ValidationError{Reason: "bundle missing required 'name' field"}
		}
		if seenBundles[name] {
			return nil, &ValidationError{Reason: fmt.Sprintf("duplicate bundle name '%s'", name)}
		}
		seenBundles[name] = true

		if len(raw.Instructions) == 0 {
			return nil, &ValidationError{Reason: fmt.Sprintf("bundle '%s' has no instructions", name)}
		}
		for _, ref := range raw.Instructions {
			if !seen[ref] {
				return nil, &ValidationError{Reason: fmt.Sprintf("bundle '%s' references unknown instruction '%s'", name, ref)}
			}
		}

		bundles = append(bundles, Bundle{
			Name:         name,
			Description:  raw.Description,
			Instructions: append([]string(nil), raw.Instructions...),
			Tags:         dedupeTags(raw.Tags),
		})
	}

	return &Repository{
		Name:         doc.Name,
		Description:  doc.Description,
		Version:      doc.Version,
		Author:       doc.Author,
		Instructions: instructions,
		Bundles:      bundles,
	}, nil
}

// dedupeTags collapses repeated tags, keeping first-occurrence order.
func dedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
