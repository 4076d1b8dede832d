package system

import (
	"github.com/YuliaD2609/DesktopPotato/engine"
	"github.com/YuliaD2609/DesktopPotato/service"
)

// Install registers the behavior systems on w
func Install(w *engine.World) {
	interactions := NewInteractionSystem(w)

	w.AddSystem(NewTimerSystem(w))
	w.AddSystem(NewSteeringSystem(w))
	w.AddSystem(NewJumpSystem(w))
	w.AddSystem(NewCompanionSystem(w))
	w.AddSystem(interactions)
	w.AddSystem(NewFleeSystem(w, interactions))
}

// NewSimulation creates a simulation with every behavior system installed
func NewSimulation(
	cfg engine.SimulationConfig,
	cursor service.CursorProvider,
	workArea service.WorkAreaProvider,
	presenter service.SurfacePresenter,
	opts ...engine.Option,
) *engine.Simulation {
	opts = append([]engine.Option{engine.WithSystems(Install)}, opts...)
	return engine.NewSimulation(cfg, cursor, workArea, presenter, opts...)
}
