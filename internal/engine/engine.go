// Package engine provides the core logic for scaffolder runs.
//
// The engine is the orchestration layer between the CLI and the lower
// level pieces: it parses the tree text, plans build targets against
// the destination root, and materializes (or simulates) them on the
// filesystem, producing one result per target in input order.
package engine

import (
	"github.com/BeepBoopVictor/project-scaffolder/internal/fsops"
)

// Default permissions for created entries.
const (
	dirPerm  = 0755
	filePerm = 0644
)

// Engine orchestrates a scaffold run.
// It is the main API surface called by the CLI.
type Engine struct {
	fs fsops.FS
}

// New creates a new Engine with the given filesystem.
func New(fs fsops.FS) *Engine {
	return &Engine{fs: fs}
}
