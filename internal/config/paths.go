// Package config resolves the filesystem paths scaffolder operates on.
//
// The destination root supplied on the command line may be relative or
// use "~" for the user's home directory; it is resolved to an absolute,
// cleaned path before any planning happens so every build target is
// anchored to a canonical root.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveDest resolves a user-supplied destination root to an absolute,
// cleaned path. "~" and "~/..." expand to the user's home directory.
func ResolveDest(out string) (string, error) {
	if out == "" {
		return "", fmt.Errorf("destination root is empty")
	}

	if out == "~" || strings.HasPrefix(out, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		out = filepath.Join(home, strings.TrimPrefix(out, "~"))
	}

	abs, err := filepath.Abs(out)
	if err != nil {
		return "", fmt.Errorf("failed to resolve destination root: %w", err)
	}
	return abs, nil
}

// EnsureDest creates the destination root and any missing ancestors.
func EnsureDest(dest string) error {
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("failed to create destination root %s: %w", dest, err)
	}
	return nil
}
