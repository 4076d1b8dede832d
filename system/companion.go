package system

import (
	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/engine"
	"github.com/YuliaD2609/DesktopPotato/parameter"
	"github.com/YuliaD2609/DesktopPotato/vmath"
)

// CompanionSystem senses the cursor threat and runs the idle/wander baseline
// Bonded and threatened companions are left to the interaction and flee passes
type CompanionSystem struct {
	world *engine.World
}

// NewCompanionSystem creates a new companion system
func NewCompanionSystem(world *engine.World) engine.System {
	return &CompanionSystem{world: world}
}

func (s *CompanionSystem) Name() string {
	return "companion"
}

func (s *CompanionSystem) Priority() int {
	return parameter.PriorityCompanion
}

// Update senses every companion, then moves the free ones
func (s *CompanionSystem) Update() {
	cur := &s.world.Resources.Cursor
	avoid := s.world.Resources.Tuning.AvoidDistance

	for _, a := range s.world.Companions() {
		a.Threatened = false
		if cur.Valid {
			cx, cy := a.Center()
			a.Threatened = vmath.Distance(cx, cy, cur.X, cur.Y) < avoid
		}

		if a.Threatened || a.State.IsBonded() {
			continue
		}
		s.baseline(a)
	}
}

func (s *CompanionSystem) baseline(a *component.Agent) {
	res := s.world.Resources
	t := &res.Tuning

	// Flee lapsed: slow back down in the same direction
	if a.State.IsRunning() {
		f, _ := a.State.Direction()
		a.SetState(component.WalkState(f))
	}

	if res.Rng.Chance(t.ResampleChance) {
		r := res.Rng.Float64()
		switch {
		case r < t.IdleWeight:
			a.SetState(component.StateIdle)
		case r < t.IdleWeight+t.WalkLeftWeight:
			a.SetState(component.StateWalkLeft)
		default:
			a.SetState(component.StateWalkRight)
		}
	}

	f, moving := a.State.Direction()
	if !moving {
		return
	}
	a.Facing = f

	step := t.WalkSpeed
	if f == component.FacingLeft {
		step = -step
	}
	lo, hi := vmath.HorizontalBounds(res.WorkArea, res.AgentSize)
	x := a.X + step

	// Bounce off the work area edges
	switch {
	case x < lo:
		x = lo
		a.SetState(component.StateWalkRight)
		a.Facing = component.FacingRight
	case x > hi:
		x = hi
		a.SetState(component.StateWalkLeft)
		a.Facing = component.FacingLeft
	}
	a.X = x
}
