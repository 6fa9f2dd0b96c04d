// Package fsops provides filesystem operations for materializing build
// targets.
//
// All filesystem mutations in scaffolder go through the FS interface,
// which keeps the materializer testable and concentrates name validation
// in one place so generated paths cannot escape the destination root.
package fsops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FS provides an abstraction for filesystem operations.
// All filesystem mutations in scaffolder must go through this interface.
type FS interface {
	// Lstat returns file info without following symlinks.
	Lstat(path string) (os.FileInfo, error)

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// Touch creates an empty file. It fails if the file already exists.
	Touch(path string, perm os.FileMode) error

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to an existing or new file.
	WriteFile(path string, data []byte, perm os.FileMode) error

	// ValidateName validates a single tree-entry name for safety.
	ValidateName(name string) error
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Lstat returns file info without following symlinks.
func (fs *RealFS) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// Exists checks if a path exists.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// MkdirAll creates a directory and all parent directories.
func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Touch creates an empty file at path. The parent directory must exist.
func (fs *RealFS) Touch(path string, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return f.Close()
}

// ReadFile reads the entire contents of a file.
func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to path.
func (fs *RealFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// ValidateName validates a tree-entry name: it must be a single path
// segment, not ".", not "..", and must not contain path separators.
func (fs *RealFS) ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("invalid name: empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid name: %q", name)
	}
	if strings.Contains(name, "/") || strings.Contains(name, "\\") ||
		strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("invalid name: %q must not contain path separators", name)
	}
	return nil
}
