package engine

import (
	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/event"
	"github.com/YuliaD2609/DesktopPotato/parameter"
	"github.com/YuliaD2609/DesktopPotato/status"
	"github.com/YuliaD2609/DesktopPotato/vmath"
)

// World is the agent registry plus the shared resources systems read each tick
// Not safe for concurrent use; Simulation serializes every access
type World struct {
	nextEntityID core.Entity

	agents  map[core.Entity]*component.Agent
	order   []core.Entity // Creation order, drives deterministic iteration
	primary core.Entity

	Resources *Resources

	systems  []System
	clearing bool
}

// NewWorld creates an empty world with the given tuning and random source
func NewWorld(tuning parameter.Tuning, rng *vmath.FastRand) *World {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	return &World{
		nextEntityID: 1,
		agents:       make(map[core.Entity]*component.Agent),
		Resources: &Resources{
			WorkArea:  core.Area{Width: parameter.FallbackWorkAreaWidth, Height: parameter.FallbackWorkAreaHeight},
			AgentSize: parameter.DefaultAgentSize,
			Tuning:    tuning,
			Rng:       rng,
			Timers:    NewTimerQueue(),
			Status:    status.NewRegistry(),
			Events:    event.NewQueue(),
		},
	}
}

// --- Registry ---

// CreateAgent registers a new agent with the next monotonic id
func (w *World) CreateAgent(kind component.Kind) *component.Agent {
	id := w.nextEntityID
	w.nextEntityID++

	a := component.NewAgent(id, kind)
	w.agents[id] = a
	w.order = append(w.order, id)
	if kind == component.KindPrimary {
		w.primary = id
	}
	return a
}

// RemoveAgent cancels the agent's timers, drops it from the registry and notifies handlers
// Returns false if the agent was not registered
func (w *World) RemoveAgent(e core.Entity) bool {
	a, ok := w.agents[e]
	if !ok {
		return false
	}

	w.Resources.Timers.CancelOwner(e)
	delete(w.agents, e)
	for i, id := range w.order {
		if id == e {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	if w.primary == e {
		w.primary = 0
	}

	w.Emit(event.EventAgentRemoved, &event.AgentPayload{Entity: e, Kind: a.Kind})
	return true
}

// Agent returns a live agent or nil
func (w *World) Agent(e core.Entity) *component.Agent {
	return w.agents[e]
}

// Alive reports whether e is registered
func (w *World) Alive(e core.Entity) bool {
	_, ok := w.agents[e]
	return ok
}

// Primary returns the pointer-following agent or nil when stopped
func (w *World) Primary() *component.Agent {
	if w.primary == 0 {
		return nil
	}
	return w.agents[w.primary]
}

// Agents returns every agent in creation order
func (w *World) Agents() []*component.Agent {
	out := make([]*component.Agent, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.agents[id])
	}
	return out
}

// Companions returns companion agents in creation order
func (w *World) Companions() []*component.Agent {
	out := make([]*component.Agent, 0, len(w.order))
	for _, id := range w.order {
		if a := w.agents[id]; a.IsCompanion() {
			out = append(out, a)
		}
	}
	return out
}

// CompanionCount returns the live companion population
func (w *World) CompanionCount() int {
	n := len(w.agents)
	if w.primary != 0 {
		n--
	}
	return n
}

// Count returns the number of live agents
func (w *World) Count() int {
	return len(w.agents)
}

// --- Systems ---

// AddSystem registers a system and keeps the list sorted by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)

	// Insertion sort, small N, stable for equal priorities
	for i := len(w.systems) - 1; i > 0 && w.systems[i].Priority() < w.systems[i-1].Priority(); i-- {
		w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
	}
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Update runs every system once, in priority order
func (w *World) Update() {
	for _, s := range w.systems {
		s.Update()
	}
}

// --- Events & timers ---

// Emit delivers an event to interested systems immediately and queues it for subscribers
func (w *World) Emit(t event.EventType, payload any) {
	ev := event.Event{Type: t, Payload: payload, Tick: w.Resources.Tick}
	for _, s := range w.systems {
		h, ok := s.(EventHandler)
		if !ok {
			continue
		}
		for _, et := range h.EventTypes() {
			if et == t {
				h.HandleEvent(ev)
				break
			}
		}
	}
	w.Resources.Events.Push(ev)
}

// Schedule arms a timer relative to the current tick
func (w *World) Schedule(delay uint64, fn func(), owners ...core.Entity) core.TimerID {
	return w.Resources.Timers.Schedule(w.Resources.Tick, delay, fn, owners...)
}

// FireTimers runs timers due at the current tick, skipping those with removed owners
func (w *World) FireTimers() int {
	return w.Resources.Timers.Fire(w.Resources.Tick, w.Alive)
}
