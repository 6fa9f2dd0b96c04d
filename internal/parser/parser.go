// Package parser converts indentation-based tree text into an ordered
// sequence of (level, name) items.
//
// The input format is the informal outline style commonly pasted from
// chat assistants or written by hand: one entry per line, nesting
// expressed with leading spaces, directories marked with a trailing "/",
// and "#" starting a comment that runs to end of line.
package parser

import (
	"strings"
)

// Item is one parsed tree entry: its indentation level and its trimmed
// name. A trailing "/" on the name marks a directory; the marker is kept
// here and interpreted by the planner.
type Item struct {
	// Level is the nesting level, leading spaces divided by indent size.
	Level int

	// Name is the trimmed line content after indentation.
	Name string
}

// Parse reads tree text and returns the ordered items.
//
// For each line, everything from the first "#" onward is discarded and
// lines that are empty after stripping are dropped entirely; they carry
// no level information. The level is the count of leading space
// characters divided by indentSize, truncating, so indentation that is
// not an exact multiple rounds down to the nearest level.
//
// Only space characters count as indentation. A line indented with tabs
// parses at level 0 regardless of its visual nesting.
func Parse(text string, indentSize int) []Item {
	var items []Item

	for _, raw := range strings.Split(text, "\n") {
		line := stripComment(raw)
		if strings.TrimSpace(line) == "" {
			continue
		}

		stripped := strings.TrimLeft(line, " ")
		indent := len(line) - len(stripped)
		level := indent / indentSize

		name := strings.TrimSpace(stripped)
		if name == "" {
			continue
		}

		items = append(items, Item{Level: level, Name: name})
	}

	return items
}

// stripComment removes everything from the first "#" to end of line,
// then trims trailing whitespace. Further "#" characters are part of
// the comment.
func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimRight(line, " \t\r\n")
}
