package event

import (
	"sync"

	"github.com/YuliaD2609/DesktopPotato/parameter"
)

// Queue buffers events produced during a tick until the tick lock is released
// Push and Consume are safe for concurrent use
type Queue struct {
	mu     sync.Mutex
	events []Event
}

func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, parameter.EventQueueSize)}
}

// Push appends an event
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, parameter.EventQueueSize)
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
