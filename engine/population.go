package engine

import (
	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/event"
	"github.com/YuliaD2609/DesktopPotato/parameter"
	"github.com/YuliaD2609/DesktopPotato/vmath"
)

// spawnPrimary creates the pointer-following agent at the work area center
func (w *World) spawnPrimary() *component.Agent {
	a := w.CreateAgent(component.KindPrimary)
	a.Size = parameter.PrimarySize

	wa := w.Resources.WorkArea
	a.X = float64(wa.X + (wa.Width-a.Size)/2)
	a.Y = float64(wa.Y + (wa.Height-a.Size)/2)

	w.Emit(event.EventAgentSpawned, &event.AgentPayload{Entity: a.ID, Kind: a.Kind})
	return a
}

// spawnCompanion adds one companion at a random bounded X
// Kind alternates with the current population parity
func (w *World) spawnCompanion() *component.Agent {
	kind := component.CompanionKindFor(w.CompanionCount())
	a := w.CreateAgent(kind)
	a.X = vmath.AreaRandomX(w.Resources.WorkArea, w.Resources.AgentSize, w.Resources.Rng)
	w.SettlePose(a)

	w.Emit(event.EventAgentSpawned, &event.AgentPayload{Entity: a.ID, Kind: a.Kind})
	return a
}

// reconcile converges the companion population to target without touching survivors
// Newest companions are removed first
func (w *World) reconcile(target int) (added, removed int) {
	for w.CompanionCount() < target {
		w.spawnCompanion()
		added++
	}
	for w.CompanionCount() > target {
		comps := w.Companions()
		w.RemoveAgent(comps[len(comps)-1].ID)
		removed++
	}
	return added, removed
}

// Clearing reports whether agents are being removed by a stop rather than one by one
func (w *World) Clearing() bool {
	return w.clearing
}

// clear removes every agent and timer
func (w *World) clear() {
	w.clearing = true
	defer func() { w.clearing = false }()

	w.Resources.Timers.Clear()
	for _, a := range w.Agents() {
		w.RemoveAgent(a.ID)
	}
}
