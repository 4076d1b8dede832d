package service

import (
	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
)

// Service defines the lifecycle of an adapter around the simulation core
// Adapters own long-lived resources: terminals, audio devices, listeners
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Start begins operation, launching goroutines if any
	Start() error

	// Stop halts operation and releases resources
	// Must be idempotent
	Stop() error
}

// CursorProvider samples the pointer position in screen pixels
// Errors are transient: the simulation skips the dependent update for that tick
type CursorProvider interface {
	Sample() (core.Point, error)
}

// WorkAreaProvider reports the usable screen rectangle
type WorkAreaProvider interface {
	Bounds() (core.Area, error)
}

// Handle identifies a presenter surface, zero is never issued
type Handle uint64

// SurfacePresenter shows one surface per agent
// Every call on a destroyed or unknown handle must be a silent no-op
type SurfacePresenter interface {
	Create(size int, pos core.Point) Handle
	SetPosition(h Handle, x, y int)
	SetSize(h Handle, size int)
	SetSprite(h Handle, key component.SpriteKey)
	SetFacing(h Handle, f component.Facing)
	SetVisible(h Handle, visible bool)
	Destroy(h Handle)
}

// Flusher is implemented by presenters that batch commands
// The simulation calls Flush once after each presented tick
type Flusher interface {
	Flush()
}
