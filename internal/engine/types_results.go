package engine

import (
	"github.com/BeepBoopVictor/project-scaffolder/internal/planner"
)

// Action is the outcome of materializing one build target. The set is
// closed; Marker and String are exhaustive so adding an action is a
// compile-time-checked change.
type Action int

// Action constants
const (
	ActionCreated Action = iota
	ActionExists
	ActionSkipped
	ActionOverwritten
	ActionDryRun
)

// String returns the action's report label.
func (a Action) String() string {
	switch a {
	case ActionCreated:
		return "created"
	case ActionExists:
		return "exists"
	case ActionSkipped:
		return "skipped"
	case ActionOverwritten:
		return "overwritten"
	case ActionDryRun:
		return "dry-run"
	}
	return "unknown"
}

// Marker returns the single-character listing marker for the action.
func (a Action) Marker() string {
	switch a {
	case ActionCreated:
		return "+"
	case ActionExists:
		return "="
	case ActionSkipped:
		return "-"
	case ActionOverwritten:
		return "!"
	case ActionDryRun:
		return "~"
	}
	return "?"
}

// Result records the outcome of one build target. Results are produced
// in target order, immediately after the corresponding operation (or
// its simulation) completes, and are immutable once produced.
type Result struct {
	// Path is the absolute target path.
	Path string

	// Kind is the target kind (dir or file).
	Kind planner.Kind

	// Action is what happened (or would happen) at the path.
	Action Action

	// Created reports whether the target was created, or — for dry-run
	// — whether it would be. The dry-run value is a best-effort
	// prediction: nothing is written, and a concurrent process could
	// change reality between prediction and a later real run.
	Created bool
}

// BuildResult represents the outcome of a scaffold run.
type BuildResult struct {
	// DestRoot is the resolved destination root.
	DestRoot string

	// Targets is the ordered list of planned build targets.
	Targets []planner.Target

	// Results holds one entry per target, in target order.
	Results []Result
}

// Summary holds the report counts for a result list.
type Summary struct {
	DirsCreated  int
	FilesCreated int
	Existed      int
	Overwritten  int
	Skipped      int

	// DryRun is true if any result was simulated.
	DryRun bool
}

// Summarize computes report counts. Dry-run results count toward the
// created totals when creation was predicted, so a preview adds up the
// same way the real run would.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Action {
		case ActionCreated, ActionDryRun:
			if r.Created {
				if r.Kind == planner.KindDir {
					s.DirsCreated++
				} else {
					s.FilesCreated++
				}
			}
		case ActionExists:
			s.Existed++
		case ActionOverwritten:
			s.Overwritten++
		case ActionSkipped:
			s.Skipped++
		}
		if r.Action == ActionDryRun {
			s.DryRun = true
		}
	}
	return s
}
