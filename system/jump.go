package system

import (
	"sync/atomic"

	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/engine"
	"github.com/YuliaD2609/DesktopPotato/event"
	"github.com/YuliaD2609/DesktopPotato/parameter"
	"github.com/YuliaD2609/DesktopPotato/status"
)

// JumpSystem runs the primary agent's idle hop: Waiting -> Jumping -> Waiting
// Driven entirely by one-shot timers, at most one jump timer is ever armed
type JumpSystem struct {
	world *engine.World
	timer core.TimerID

	statJumps   *atomic.Int64
	statSkipped *atomic.Int64
}

// NewJumpSystem creates a new jump system
func NewJumpSystem(world *engine.World) engine.System {
	return &JumpSystem{
		world:       world,
		statJumps:   world.Resources.Status.Ints.Get(status.KeyJumps),
		statSkipped: world.Resources.Status.Ints.Get(status.KeyJumpsSkipped),
	}
}

func (s *JumpSystem) Name() string {
	return "jump"
}

func (s *JumpSystem) Priority() int {
	return parameter.PriorityJump
}

func (s *JumpSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSimulationStarted,
		event.EventSimulationStopped,
	}
}

// HandleEvent arms the first delay on start
func (s *JumpSystem) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.EventSimulationStarted:
		s.arm()
	case event.EventSimulationStopped:
		s.timer = 0
	}
}

// Update is a no-op, jumps advance on timers
func (s *JumpSystem) Update() {}

func (s *JumpSystem) arm() {
	p := s.world.Primary()
	if p == nil {
		return
	}
	t := &s.world.Resources.Tuning
	delay := uint64(s.world.Resources.Rng.Range(int(t.JumpDelayMinTicks), int(t.JumpDelayMaxTicks)))
	s.timer = s.world.Schedule(delay, s.fire, p.ID)
}

// fire starts a jump, or re-arms without jumping while the agent is running
func (s *JumpSystem) fire() {
	s.timer = 0
	p := s.world.Primary()
	if p == nil {
		return
	}

	if p.Steering == component.SteeringRunning {
		s.statSkipped.Add(1)
		s.arm()
		return
	}

	p.Jump = component.JumpJumping
	p.JumpLift = s.world.Resources.Tuning.JumpHeight
	s.statJumps.Add(1)
	s.world.Emit(event.EventJumpStarted, &event.AgentPayload{Entity: p.ID, Kind: p.Kind})

	s.timer = s.world.Schedule(s.world.Resources.Tuning.JumpTicks, s.land, p.ID)
}

// land ends the jump and only then schedules the next one
func (s *JumpSystem) land() {
	s.timer = 0
	p := s.world.Primary()
	if p == nil {
		return
	}

	p.Jump = component.JumpWaiting
	p.JumpLift = 0
	s.world.Emit(event.EventJumpLanded, &event.AgentPayload{Entity: p.ID, Kind: p.Kind})

	s.arm()
}
