package fetch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/templatekit-labs/templatekit/internal/library"
)

const (
	// freshnessFile is the name of the timestamp marker file.
	freshnessFile = ".templatekit-fetched"

	// DefaultMaxAge is the default staleness threshold (7 days).
	DefaultMaxAge = 7 * 24 * time.Hour

	// tmpSuffix is appended to the target dir during atomic clone.
	tmpSuffix = ".tmp"
)

// RepoNameFromURL derives a repository name from a git URL:
// "https://host/org/ai-templates.git" → "ai-templates".
func RepoNameFromURL(url string) string {
	trimmed := strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	name := trimmed[strings.LastIndexByte(trimmed, '/')+1:]
	if i := strings.LastIndexByte(name, ':'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Clone performs a shallow clone of a template repository into targetDir.
//
// The clone is atomic: it writes to a .tmp directory first, then renames
// on success. On failure the .tmp directory is cleaned up.
func Clone(repoURL, targetDir string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	tmpDir := targetDir + tmpSuffix

	// Clean up any leftover tmp dir from a previous failed attempt.
	_ = os.RemoveAll(tmpDir)

	if err := os.MkdirAll(filepath.Dir(tmpDir), library.DirPermNormal); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	if err := shallowClone(tmpDir, repoURL); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("cloning template repository: %w", err)
	}

	// Atomic rename.
	if err := os.RemoveAll(targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("removing existing repository dir: %w", err)
	}
	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("finalizing repository clone: %w", err)
	}

	WriteFreshnessMarker(targetDir)
	return nil
}

// Update pulls the latest changes in a cloned template repository.
// If the directory is not a git clone yet, it falls back to Clone.
func Update(repoURL, repoDir string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	gitDir := filepath.Join(repoDir, ".git")
	if _, err := os.Stat(gitDir); os.IsNotExist(err) {
		return Clone(repoURL, repoDir)
	}

	cmd := exec.Command("git", "pull", "--depth=1", "--rebase")
	cmd.Dir = repoDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("pulling repository updates: %w\n%s", err, strings.TrimSpace(string(output)))
	}

	WriteFreshnessMarker(repoDir)
	return nil
}

// RemoteURL returns the origin URL of a cloned repository.
func RemoteURL(repoDir string) (string, error) {
	cmd := exec.Command("git", "remote", "get-url", "origin")
	cmd.Dir = repoDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("reading origin URL: %w\n%s", err, strings.TrimSpace(string(output)))
	}
	return strings.TrimSpace(string(output)), nil
}

// WriteFreshnessMarker writes the current Unix timestamp to the freshness file.
func WriteFreshnessMarker(repoDir string) {
	markerPath := filepath.Join(repoDir, freshnessFile)
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	_ = os.WriteFile(markerPath, []byte(ts), library.FilePermNormal)
}

// ReadFreshnessMarker reads the timestamp from the freshness file.
// Returns zero time if the file doesn't exist or can't be parsed.
func ReadFreshnessMarker(repoDir string) time.Time {
	markerPath := filepath.Join(repoDir, freshnessFile)
	data, err := os.ReadFile(markerPath)
	if err != nil {
		return time.Time{}
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// IsStale returns true if the repository was last fetched more than maxAge
// ago, or if the freshness marker is missing.
func IsStale(repoDir string, maxAge time.Duration) bool {
	lastFetched := ReadFreshnessMarker(repoDir)
	if lastFetched.IsZero() {
		return true
	}
	return time.Since(lastFetched) > maxAge
}

// shallowClone performs a --depth=1 clone.
func shallowClone(targetDir, repoURL string) error {
	cmd := exec.Command("git", "clone", "--depth=1", repoURL, targetDir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("shallow clone: %w\n%s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// ensureGit checks that git is available on PATH.
func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}
