// Package planner resolves parsed tree items into ordered build targets.
//
// The planner walks the items in input order, maintaining a stack of
// currently open ancestor directories rooted at the destination. It
// produces a deterministic, ordered list of absolute target paths for
// the materializer; order matters because later items resolve against
// the stack state left by earlier ones.
package planner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BeepBoopVictor/project-scaffolder/internal/fsops"
	"github.com/BeepBoopVictor/project-scaffolder/internal/parser"
)

// Kind classifies a build target.
type Kind string

// Target kind constants
const (
	KindDir  Kind = "dir"
	KindFile Kind = "file"
)

// Target is a resolved build target: an absolute path and its kind.
type Target struct {
	// Path is the absolute filesystem path to create.
	Path string

	// Kind says whether the target is a directory or a file.
	Kind Kind
}

// BuildTargets resolves items against the destination root.
//
// Nesting rules:
//   - An item deeper than its level allows pops the stack back to that
//     level, closing out deeper directories.
//   - An item that skips ahead by more than one level (e.g. level 3
//     right after level 0) is clamped to the deepest currently open
//     directory instead of fabricating intermediate levels. Informal
//     hand-written trees commonly have inconsistent indentation, so
//     attaching to the nearest open ancestor beats rejecting the spec.
//   - A name ending in "/" is a directory and is pushed onto the stack;
//     files never push.
//
// Every emitted path is a descendant of root: names are validated to be
// single path segments, so no item can climb out of the destination.
func BuildTargets(items []parser.Item, root string, fs fsops.FS) ([]Target, error) {
	stack := []string{root}
	targets := make([]Target, 0, len(items))

	for _, it := range items {
		// Pop to level. stack[0] is the root and is never removed.
		for len(stack)-1 > it.Level {
			stack = stack[:len(stack)-1]
		}

		// An item that skips ahead by more than one level resolves
		// against the current stack top, clamping it to the deepest
		// open directory.

		isDir := strings.HasSuffix(it.Name, "/")
		clean := strings.TrimSuffix(it.Name, "/")

		if err := fs.ValidateName(clean); err != nil {
			return nil, fmt.Errorf("tree entry %q: %w", it.Name, err)
		}

		target := filepath.Join(stack[len(stack)-1], clean)
		kind := KindFile
		if isDir {
			kind = KindDir
		}
		targets = append(targets, Target{Path: target, Kind: kind})

		if isDir {
			stack = append(stack, target)
		}
	}

	return targets, nil
}
