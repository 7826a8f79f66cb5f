package manifest

import (
	"errors"
	"fmt"
	"io/fs"
)

// The parser surfaces every failure as one of the typed errors below so
// callers can branch with errors.As. The set is closed: no other error
// kinds escape ParseRepository.

// NotFoundError reports a missing manifest file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("manifest not found: %s", e.Path)
}

// EmptyManifestError reports a manifest that parsed to a null or zero-key
// document.
type EmptyManifestError struct {
	Path string
}

func (e *EmptyManifestError) Error() string {
	return fmt.Sprintf("manifest is empty: %s", e.Path)
}

// MalformedManifestError reports manifest content the YAML parser rejected.
type MalformedManifestError struct {
	Path string
	Err  error
}

func (e *MalformedManifestError) Error() string {
	return fmt.Sprintf("malformed manifest %s: %v", e.Path, e.Err)
}

func (e *MalformedManifestError) Unwrap() error { return e.Err }

// ValidationError reports a structural or referential rule violation in an
// otherwise well-formed manifest. Reason names the offending field or entity.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// FileReadError reports a declared instruction file that is missing or
// unreadable. File is the path as declared in the manifest (relative to the
// repository root).
type FileReadError struct {
	File string
	Err  error
}

func (e *FileReadError) Error() string {
	if e.Err == nil || errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("instruction file not found: %s", e.File)
	}
	return fmt.Sprintf("reading instruction file %s: %v", e.File, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }
