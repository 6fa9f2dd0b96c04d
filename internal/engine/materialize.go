package engine

import (
	"fmt"
	"path/filepath"

	"github.com/BeepBoopVictor/project-scaffolder/internal/planner"
)

// materialize performs (or simulates) the filesystem operation for each
// target and returns one result per target, in target order. A
// filesystem failure aborts the run at the failing target; everything
// processed before it stays as created/existing, and a re-run reports
// those entries as exists.
func (e *Engine) materialize(targets []planner.Target, req *BuildRequest) ([]Result, error) {
	results := make([]Result, 0, len(targets))

	for _, t := range targets {
		var r Result
		var err error
		switch t.Kind {
		case planner.KindDir:
			r, err = e.materializeDir(t, req)
		case planner.KindFile:
			r, err = e.materializeFile(t, req)
		default:
			err = fmt.Errorf("unknown target kind: %s", t.Kind)
		}
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, nil
}

func (e *Engine) materializeDir(t planner.Target, req *BuildRequest) (Result, error) {
	exists, err := e.fs.Exists(t.Path)
	if err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", t.Path, err)
	}

	if req.DryRun {
		return Result{Path: t.Path, Kind: t.Kind, Action: ActionDryRun, Created: !exists}, nil
	}

	if exists {
		return Result{Path: t.Path, Kind: t.Kind, Action: ActionExists}, nil
	}

	if err := e.fs.MkdirAll(t.Path, dirPerm); err != nil {
		return Result{}, fmt.Errorf("mkdir %s: %w", t.Path, err)
	}
	return Result{Path: t.Path, Kind: t.Kind, Action: ActionCreated, Created: true}, nil
}

func (e *Engine) materializeFile(t planner.Target, req *BuildRequest) (Result, error) {
	// File creation disabled: skipped wins over everything, including
	// dry-run and force.
	if !req.CreateFiles {
		return Result{Path: t.Path, Kind: t.Kind, Action: ActionSkipped}, nil
	}

	exists, err := e.fs.Exists(t.Path)
	if err != nil {
		return Result{}, fmt.Errorf("stat %s: %w", t.Path, err)
	}

	if req.DryRun {
		return Result{Path: t.Path, Kind: t.Kind, Action: ActionDryRun, Created: !exists}, nil
	}

	// A parent may be missing when a level was clamped under a file's
	// sibling or the root itself was just planned; create it quietly.
	if err := e.fs.MkdirAll(filepath.Dir(t.Path), dirPerm); err != nil {
		return Result{}, fmt.Errorf("mkdir %s: %w", filepath.Dir(t.Path), err)
	}

	if exists {
		if req.Force {
			// Content-preserving rewrite: read then write back the
			// identical bytes. Never truncates or alters content; it
			// only makes the deliberate revisit observable in the
			// report.
			data, err := e.fs.ReadFile(t.Path)
			if err != nil {
				return Result{}, fmt.Errorf("read %s: %w", t.Path, err)
			}
			if err := e.fs.WriteFile(t.Path, data, filePerm); err != nil {
				return Result{}, fmt.Errorf("rewrite %s: %w", t.Path, err)
			}
			return Result{Path: t.Path, Kind: t.Kind, Action: ActionOverwritten}, nil
		}
		return Result{Path: t.Path, Kind: t.Kind, Action: ActionExists}, nil
	}

	if err := e.fs.Touch(t.Path, filePerm); err != nil {
		return Result{}, err
	}
	return Result{Path: t.Path, Kind: t.Kind, Action: ActionCreated, Created: true}, nil
}
