package event

import "sync"

// Handler receives dispatched events
type Handler func(ev Event)

// Router fans events out to subscribers
// Subscribers registered with no types receive every event
type Router struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]subscription
	order    []int
}

type subscription struct {
	types   map[EventType]bool
	handler Handler
}

func NewRouter() *Router {
	return &Router{handlers: make(map[int]subscription)}
}

// Subscribe registers h for the given types and returns an unsubscribe func
func (r *Router) Subscribe(h Handler, types ...EventType) func() {
	sub := subscription{handler: h}
	if len(types) > 0 {
		sub.types = make(map[EventType]bool, len(types))
		for _, t := range types {
			sub.types[t] = true
		}
	}

	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.handlers[id] = sub
	r.order = append(r.order, id)
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.handlers, id)
		for i, v := range r.order {
			if v == id {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers events in order, handlers in registration order
func (r *Router) Dispatch(events []Event) {
	if len(events) == 0 {
		return
	}

	r.mu.RLock()
	subs := make([]subscription, 0, len(r.order))
	for _, id := range r.order {
		subs = append(subs, r.handlers[id])
	}
	r.mu.RUnlock()

	for _, ev := range events {
		for _, sub := range subs {
			if sub.types != nil && !sub.types[ev.Type] {
				continue
			}
			sub.handler(ev)
		}
	}
}
