package engine

import (
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/event"
	"github.com/YuliaD2609/DesktopPotato/parameter"
	"github.com/YuliaD2609/DesktopPotato/status"
	"github.com/YuliaD2609/DesktopPotato/vmath"
)

// Resources holds the shared per-world state read by every system
type Resources struct {
	Tick      uint64
	Cursor    CursorSample
	WorkArea  core.Area
	AgentSize int // Shared companion size
	Tuning    parameter.Tuning
	Rng       *vmath.FastRand
	Timers    *TimerQueue
	Status    *status.Registry
	Events    *event.Queue
}

// CursorSample is the latest pointer sample and the previous horizontal position
type CursorSample struct {
	X, Y  float64
	PrevX float64
	Valid bool // False when this tick's sample failed
	seen  bool
}

// Update records a successful sample, the first sample has zero velocity
func (c *CursorSample) Update(p core.Point) {
	x := float64(p.X)
	if c.seen {
		c.PrevX = c.X
	} else {
		c.PrevX = x
	}
	c.X = x
	c.Y = float64(p.Y)
	c.Valid = true
	c.seen = true
}

// Miss marks this tick's sample as failed, keeping the last good position
func (c *CursorSample) Miss() {
	c.Valid = false
}

// DeltaX returns the horizontal cursor movement since the previous sample
func (c CursorSample) DeltaX() float64 {
	return c.X - c.PrevX
}

// Reset forgets every sample
func (c *CursorSample) Reset() {
	*c = CursorSample{}
}
