package engine

import "errors"

var (
	// ErrInvalidIndent indicates an unsupported indent size.
	ErrInvalidIndent = errors.New("indent size must be 2 or 4")

	// ErrNoDest indicates the request carries no destination root.
	ErrNoDest = errors.New("no destination root")
)
