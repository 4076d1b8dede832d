package engine

import "github.com/YuliaD2609/DesktopPotato/event"

// System is one behavior pass over the world, run once per tick in priority order
type System interface {
	// Name returns the system's registry name
	Name() string

	// Priority orders systems, lower values run first
	Priority() int

	// Update runs the pass for the current tick
	Update()
}

// EventHandler is implemented by systems that react to lifecycle events
// Handlers are invoked synchronously by World.Emit, before external subscribers
type EventHandler interface {
	EventTypes() []event.EventType
	HandleEvent(ev event.Event)
}
