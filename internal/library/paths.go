package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/templatekit-labs/templatekit/internal/branding"
)

// Directory and file name constants for the library layout.
const (
	LibraryDir = "library"
	ReposDir   = "repos"
	IndexFile  = "library.yaml"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// Root returns the path to the library directory. It checks the
// TEMPLATEKIT_LIBRARY environment variable first, then falls back to
// ~/.templatekit/library.
func Root() (string, error) {
	if v := os.Getenv(branding.EnvVar("LIBRARY")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), LibraryDir), nil
}

// ReposRoot returns the directory that holds cloned template repositories.
// TEMPLATEKIT_REPOS overrides the default ~/.templatekit/repos.
func ReposRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("REPOS")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), ReposDir), nil
}

// RepoDir returns the clone directory for a named template repository.
func RepoDir(name string) (string, error) {
	root, err := ReposRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}

// indexPath returns the path to the library index file under root.
func indexPath(root string) string {
	return filepath.Join(root, IndexFile)
}
