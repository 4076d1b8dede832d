package system

import (
	"sync/atomic"

	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/engine"
	"github.com/YuliaD2609/DesktopPotato/event"
	"github.com/YuliaD2609/DesktopPotato/parameter"
	"github.com/YuliaD2609/DesktopPotato/status"
	"github.com/YuliaD2609/DesktopPotato/vmath"
)

// FleeSystem forces threatened companions to run from the cursor
// Runs last each tick so it overrides every earlier pass, including interactions
type FleeSystem struct {
	world        *engine.World
	interactions *InteractionSystem

	statActivations *atomic.Int64
}

// NewFleeSystem creates a flee pass that aborts pairs through interactions
func NewFleeSystem(world *engine.World, interactions *InteractionSystem) engine.System {
	return &FleeSystem{
		world:           world,
		interactions:    interactions,
		statActivations: world.Resources.Status.Ints.Get(status.KeyFleeActivations),
	}
}

func (s *FleeSystem) Name() string {
	return "flee"
}

func (s *FleeSystem) Priority() int {
	return parameter.PriorityFlee
}

// Update moves every threatened companion away from the cursor at run speed
func (s *FleeSystem) Update() {
	res := s.world.Resources
	if !res.Cursor.Valid {
		return
	}

	for _, a := range s.world.Companions() {
		if !a.Threatened {
			continue
		}

		started := !a.State.IsRunning()
		if a.Pair != nil && s.interactions != nil {
			s.interactions.Interrupt(a.ID, event.InterruptFlee)
		}

		away := AwayFrom(a, res.Cursor.X)
		a.SetState(component.RunState(away))
		a.Facing = away

		step := res.Tuning.RunSpeed
		if away == component.FacingLeft {
			step = -step
		}
		lo, hi := vmath.HorizontalBounds(res.WorkArea, res.AgentSize)
		a.X = vmath.Clamp(a.X+step, lo, hi)

		if started {
			s.statActivations.Add(1)
			s.world.Emit(event.EventFleeStarted, &event.AgentPayload{Entity: a.ID, Kind: a.Kind})
		}
	}
}

// AwayFrom returns the facing pointing away from cursorX
// A cursor exactly above the center sends the agent right
func AwayFrom(a *component.Agent, cursorX float64) component.Facing {
	cx, _ := a.Center()
	if vmath.Sign(cx-cursorX) < 0 {
		return component.FacingLeft
	}
	return component.FacingRight
}
