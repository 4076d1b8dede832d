package engine

import "errors"

var (
	// ErrInvalidAgentCount rejects negative population targets
	ErrInvalidAgentCount = errors.New("agent count must be >= 0")

	// ErrInvalidAgentSize rejects non-positive sizes
	ErrInvalidAgentSize = errors.New("agent size must be > 0")

	// ErrNoCursor is returned by cursor providers that cannot sample the pointer
	ErrNoCursor = errors.New("cursor position unavailable")

	// ErrNoWorkArea is returned by providers that have no bounds yet
	ErrNoWorkArea = errors.New("work area unavailable")
)
