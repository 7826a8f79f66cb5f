package library

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Index is the persisted record of everything installed in the library.
// It lives at <library>/library.yaml.
type Index struct {
	Repositories []RepositoryRecord  `yaml:"repositories,omitempty"`
	Instructions []InstructionRecord `yaml:"instructions,omitempty"`
}

// RepositoryRecord captures the repository a set of instructions came from.
type RepositoryRecord struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// InstructionRecord is one installed instruction. Checksum is the content
// digest recorded at install time and compared on update.
type InstructionRecord struct {
	Name        string   `yaml:"name"`
	Repository  string   `yaml:"repository"`
	File        string   `yaml:"file"`
	Checksum    string   `yaml:"checksum"`
	Description string   `yaml:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// LoadIndex reads the library index under root. A missing index file yields
// an empty index, not an error.
func LoadIndex(root string) (*Index, error) {
	data, err := os.ReadFile(indexPath(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Index{}, nil
		}
		return nil, fmt.Errorf("reading library index: %w", err)
	}

	var idx Index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing library index: %w", err)
	}
	return &idx, nil
}

// Save writes the index back to <root>/library.yaml.
func (idx *Index) Save(root string) error {
	if err := os.MkdirAll(root, DirPermNormal); err != nil {
		return fmt.Errorf("creating library directory: %w", err)
	}
	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshaling library index: %w", err)
	}
	if err := os.WriteFile(indexPath(root), data, FilePermNormal); err != nil {
		return fmt.Errorf("writing library index: %w", err)
	}
	return nil
}

// Find returns the record for an instruction from a given repository.
func (idx *Index) Find(repository, name string) (*InstructionRecord, bool) {
	for i := range idx.Instructions {
		rec := &idx.Instructions[i]
		if rec.Repository == repository && rec.Name == name {
			return rec, true
		}
	}
	return nil, false
}

// Repository returns the record for a named repository.
func (idx *Index) Repository(name string) (*RepositoryRecord, bool) {
	for i := range idx.Repositories {
		if idx.Repositories[i].Name == name {
			return &idx.Repositories[i], true
		}
	}
	return nil, false
}

// upsertInstruction replaces or appends an instruction record.
func (idx *Index) upsertInstruction(rec InstructionRecord) {
	if existing, ok := idx.Find(rec.Repository, rec.Name); ok {
		*existing = rec
		return
	}
	idx.Instructions = append(idx.Instructions, rec)
}

// upsertRepository replaces or appends a repository record.
func (idx *Index) upsertRepository(rec RepositoryRecord) {
	if existing, ok := idx.Repository(rec.Name); ok {
		*existing = rec
		return
	}
	idx.Repositories = append(idx.Repositories, rec)
}

// removeRepository drops a repository record and all instruction records
// that belong to it. It returns the number of instruction records removed.
func (idx *Index) removeRepository(name string) int {
	kept := idx.Instructions[:0]
	removed := 0
	for _, rec := range idx.Instructions {
		if rec.Repository == name {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	idx.Instructions = kept

	repos := idx.Repositories[:0]
	for _, rec := range idx.Repositories {
		if rec.Name != name {
			repos = append(repos, rec)
		}
	}
	idx.Repositories = repos
	return removed
}
