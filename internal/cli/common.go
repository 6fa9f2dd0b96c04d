package cli

import (
	"github.com/BeepBoopVictor/project-scaffolder/internal/engine"
	"github.com/BeepBoopVictor/project-scaffolder/internal/fsops"
)

// newEngine creates a new engine backed by the real filesystem.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS())
}
