package engine

import (
	"context"
	"fmt"

	"github.com/BeepBoopVictor/project-scaffolder/internal/parser"
	"github.com/BeepBoopVictor/project-scaffolder/internal/planner"
)

// Algorithm steps:
// 1. Validate the request
// 2. Parse the tree text into ordered (level, name) items
// 3. Plan build targets against the destination root
// 4. Materialize (or simulate) each target, in order
// 5. Return targets and per-target results
func (e *Engine) Build(ctx context.Context, req *BuildRequest) (*BuildResult, error) {
	if req.DestRoot == "" {
		return nil, ErrNoDest
	}
	if req.IndentSize != 2 && req.IndentSize != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIndent, req.IndentSize)
	}

	items := parser.Parse(req.SpecText, req.IndentSize)

	targets, err := planner.BuildTargets(items, req.DestRoot, e.fs)
	if err != nil {
		return nil, fmt.Errorf("failed to plan build targets: %w", err)
	}

	results, err := e.materialize(targets, req)
	if err != nil {
		return nil, err
	}

	return &BuildResult{
		DestRoot: req.DestRoot,
		Targets:  targets,
		Results:  results,
	}, nil
}
