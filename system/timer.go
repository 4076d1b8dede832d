package system

import (
	"github.com/YuliaD2609/DesktopPotato/engine"
	"github.com/YuliaD2609/DesktopPotato/event"
	"github.com/YuliaD2609/DesktopPotato/parameter"
)

// TimerSystem fires due one-shot timers before any behavior pass
type TimerSystem struct {
	world *engine.World
}

// NewTimerSystem creates a new timer system
func NewTimerSystem(world *engine.World) engine.System {
	return &TimerSystem{world: world}
}

func (s *TimerSystem) Name() string {
	return "timer"
}

// Priority returns the system's priority (runs first)
func (s *TimerSystem) Priority() int {
	return parameter.PriorityTimer
}

func (s *TimerSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSimulationStopped}
}

// HandleEvent drops every pending timer when the simulation stops
func (s *TimerSystem) HandleEvent(ev event.Event) {
	if ev.Type == event.EventSimulationStopped {
		s.world.Resources.Timers.Clear()
	}
}

// Update fires timers due this tick
func (s *TimerSystem) Update() {
	s.world.FireTimers()
}
