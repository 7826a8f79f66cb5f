package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/templatekit-labs/templatekit/internal/manifest"
)

// Result summarizes an install or update pass over one repository.
type Result struct {
	Installed int // new instructions copied in
	Updated   int // instructions whose content changed
	Skipped   int // instructions already present with matching checksum
	Removed   int // instructions dropped because the manifest no longer declares them
}

// Install copies instructions from a parsed repository into the library at
// root and records them in the index. names selects a subset of instruction
// names; nil installs everything. Instructions whose recorded checksum
// matches the parsed one are skipped.
func Install(root string, repo *manifest.Repository, repoRoot string, names []string) (*Result, error) {
	selected, err := selectInstructions(repo, names)
	if err != nil {
		return nil, err
	}

	idx, err := LoadIndex(root)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, inst := range selected {
		changed, existed, err := installOne(root, repo.Name, repoRoot, inst, idx)
		if err != nil {
			return nil, err
		}
		switch {
		case !changed:
			res.Skipped++
		case existed:
			res.Updated++
		default:
			res.Installed++
		}
	}

	idx.upsertRepository(RepositoryRecord{
		Name:        repo.Name,
		Version:     repo.Version,
		Description: repo.Description,
	})

	if err := idx.Save(root); err != nil {
		return nil, err
	}
	return res, nil
}

// Update re-syncs the library with a freshly parsed repository: changed
// instructions are recopied, new ones installed, and instructions that the
// manifest no longer declares are removed from disk and index.
func Update(root string, repo *manifest.Repository, repoRoot string) (*Result, error) {
	idx, err := LoadIndex(root)
	if err != nil {
		return nil, err
	}

	declared := make(map[string]bool, len(repo.Instructions))
	for _, inst := range repo.Instructions {
		declared[inst.Name] = true
	}

	res := &Result{}

	// Drop records for vanished instructions first so the index never points
	// at files we are about to delete.
	kept := idx.Instructions[:0]
	for _, rec := range idx.Instructions {
		if rec.Repository == repo.Name && !declared[rec.Name] {
			_ = os.Remove(filepath.Join(root, repo.Name, filepath.FromSlash(rec.File)))
			res.Removed++
			continue
		}
		kept = append(kept, rec)
	}
	idx.Instructions = kept

	for _, inst := range repo.Instructions {
		changed, existed, err := installOne(root, repo.Name, repoRoot, inst, idx)
		if err != nil {
			return nil, err
		}
		switch {
		case !changed:
			res.Skipped++
		case existed:
			res.Updated++
		default:
			res.Installed++
		}
	}

	idx.upsertRepository(RepositoryRecord{
		Name:        repo.Name,
		Version:     repo.Version,
		Description: repo.Description,
	})

	if err := idx.Save(root); err != nil {
		return nil, err
	}
	return res, nil
}

// Remove deletes a repository's instructions from the library and index.
func Remove(root, repoName string) (int, error) {
	idx, err := LoadIndex(root)
	if err != nil {
		return 0, err
	}

	if _, ok := idx.Repository(repoName); !ok {
		return 0, fmt.Errorf("repository %q is not installed", repoName)
	}

	removed := idx.removeRepository(repoName)

	if err := os.RemoveAll(filepath.Join(root, repoName)); err != nil {
		return 0, fmt.Errorf("removing %s from library: %w", repoName, err)
	}

	if err := idx.Save(root); err != nil {
		return 0, err
	}
	return removed, nil
}

// InstalledPath returns the library path of an installed instruction.
func InstalledPath(root string, rec *InstructionRecord) string {
	return filepath.Join(root, rec.Repository, filepath.FromSlash(rec.File))
}

// ReadInstalled returns the content of an installed instruction file.
func ReadInstalled(root string, rec *InstructionRecord) ([]byte, error) {
	data, err := os.ReadFile(InstalledPath(root, rec))
	if err != nil {
		return nil, fmt.Errorf("reading installed instruction %s: %w", rec.Name, err)
	}
	return data, nil
}

// installOne copies a single instruction file into the library if its
// content changed. It reports whether anything was written and whether a
// record already existed.
func installOne(root, repoName, repoRoot string, inst manifest.Instruction, idx *Index) (changed, existed bool, err error) {
	dst := filepath.Join(root, repoName, filepath.FromSlash(inst.File))

	rec, ok := idx.Find(repoName, inst.Name)
	if ok && rec.Checksum == inst.Checksum {
		if _, statErr := os.Stat(dst); statErr == nil {
			return false, true, nil
		}
		// Index says installed but the file is gone; fall through and recopy.
	}

	src := filepath.Join(repoRoot, filepath.FromSlash(inst.File))
	data, err := os.ReadFile(src)
	if err != nil {
		return false, ok, fmt.Errorf("reading instruction file %s: %w", inst.File, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), DirPermNormal); err != nil {
		return false, ok, fmt.Errorf("creating library directory for %s: %w", inst.Name, err)
	}
	if err := os.WriteFile(dst, data, FilePermNormal); err != nil {
		return false, ok, fmt.Errorf("installing %s: %w", inst.Name, err)
	}

	idx.upsertInstruction(InstructionRecord{
		Name:        inst.Name,
		Repository:  repoName,
		File:        inst.File,
		Checksum:    inst.Checksum,
		Description: inst.Description,
		Tags:        inst.Tags,
	})
	return true, ok, nil
}

// selectInstructions resolves a name filter against a repository, expanding
// bundle names into their instruction lists. nil selects all instructions.
func selectInstructions(repo *manifest.Repository, names []string) ([]manifest.Instruction, error) {
	if names == nil {
		return repo.Instructions, nil
	}

	var out []manifest.Instruction
	picked := make(map[string]bool)

	add := func(name string) error {
		if picked[name] {
			return nil
		}
		inst, ok := repo.Instruction(name)
		if !ok {
			return fmt.Errorf("repository %q has no instruction or bundle named %q", repo.Name, name)
		}
		picked[name] = true
		out = append(out, inst)
		return nil
	}

	for _, name := range names {
		if bundle, ok := repo.Bundle(name); ok {
			for _, ref := range bundle.Instructions {
				if err := add(ref); err != nil {
					return nil, err
				}
			}
			continue
		}
		if err := add(name); err != nil {
			return nil, err
		}
	}
	return out, nil
}
