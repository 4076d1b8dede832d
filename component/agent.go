package component

import (
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/vmath"
)

// Agent is one simulated entity
// Primary agents use the steering and jump fields, companions the behavior fields
type Agent struct {
	ID     core.Entity
	Kind   Kind
	X, Y   float64 // Top-left, screen pixels
	Facing Facing
	Size   int // Current drawn side length

	// Companion behavior
	State      CompanionState
	Stage      InteractionStage
	Pair       *Pair // Owned by the interaction coordinator
	Threatened bool  // Cursor inside avoid radius this tick

	// Primary behavior
	Steering SteeringState
	Jump     JumpState
	JumpLift float64 // Upward visual offset while jumping

	Visible bool
	Resync  bool // Force a position command on next presentation
}

// NewAgent creates a visible idle agent facing its kind's default
func NewAgent(id core.Entity, kind Kind) *Agent {
	return &Agent{
		ID:      id,
		Kind:    kind,
		Facing:  kind.DefaultFacing(),
		State:   StateIdle,
		Visible: true,
	}
}

// IsCompanion reports whether the agent is driven by the companion engine
func (a *Agent) IsCompanion() bool {
	return a.Kind.IsCompanion()
}

// Partner returns the bonded partner id, zero when unbonded
func (a *Agent) Partner() core.Entity {
	return a.Pair.Other(a.ID)
}

// Center returns the center of the agent's square
func (a *Agent) Center() (float64, float64) {
	return vmath.Center(a.X, a.Y, a.Size)
}

// SetState applies a transition if the table allows it
// Leaving StateInteracting clears the stage qualifier
func (a *Agent) SetState(next CompanionState) bool {
	if !CanTransition(a.State, next) {
		return false
	}
	a.State = next
	if next != StateInteracting {
		a.Stage = StageNone
	}
	return true
}

// Visual returns the presentation snapshot of the agent
func (a *Agent) Visual() Visual {
	return Visual{
		X:       vmath.Round(a.X),
		Y:       vmath.Round(a.Y - a.JumpLift),
		Size:    a.Size,
		Sprite:  SpriteFor(a),
		Facing:  a.Facing,
		Visible: a.Visible,
	}
}
