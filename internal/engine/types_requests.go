package engine

// BuildRequest represents a request to scaffold a tree.
type BuildRequest struct {
	// SpecText is the raw indented tree text.
	SpecText string

	// DestRoot is the absolute destination root directory.
	DestRoot string

	// IndentSize is the number of spaces per nesting level (2 or 4).
	IndentSize int

	// CreateFiles enables file creation; when false every file target
	// is reported as skipped, regardless of other flags.
	CreateFiles bool

	// Force marks pre-existing files as overwritten via a
	// content-preserving rewrite.
	Force bool

	// DryRun simulates all targets without touching the filesystem.
	DryRun bool
}
