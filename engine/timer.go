package engine

import (
	"sort"

	"github.com/YuliaD2609/DesktopPotato/core"
)

// timerEntry is one scheduled callback and the agents it acts on
type timerEntry struct {
	id     core.TimerID
	due    uint64
	owners []core.Entity
	fn     func()
}

// TimerQueue holds one-shot timers measured in simulation ticks
// Timers are keyed by owner so removing an agent cancels everything that references it
type TimerQueue struct {
	nextID core.TimerID
	timers map[core.TimerID]*timerEntry
}

// NewTimerQueue creates an empty queue
func NewTimerQueue() *TimerQueue {
	return &TimerQueue{
		nextID: 1,
		timers: make(map[core.TimerID]*timerEntry),
	}
}

// Schedule arms fn to run delay ticks after now, minimum one tick
// owners lists the agents fn touches; fn never runs once any owner is gone
func (q *TimerQueue) Schedule(now, delay uint64, fn func(), owners ...core.Entity) core.TimerID {
	if delay == 0 {
		delay = 1
	}
	id := q.nextID
	q.nextID++
	q.timers[id] = &timerEntry{
		id:     id,
		due:    now + delay,
		owners: append([]core.Entity(nil), owners...),
		fn:     fn,
	}
	return id
}

// Cancel removes a timer, reporting whether it was pending
func (q *TimerQueue) Cancel(id core.TimerID) bool {
	if _, ok := q.timers[id]; !ok {
		return false
	}
	delete(q.timers, id)
	return true
}

// CancelOwner removes every timer referencing e and returns the count
func (q *TimerQueue) CancelOwner(e core.Entity) int {
	n := 0
	for id, t := range q.timers {
		for _, o := range t.owners {
			if o == e {
				delete(q.timers, id)
				n++
				break
			}
		}
	}
	return n
}

// Clear drops every timer
func (q *TimerQueue) Clear() {
	clear(q.timers)
}

// Pending returns the number of armed timers
func (q *TimerQueue) Pending() int {
	return len(q.timers)
}

// PendingFor returns the number of armed timers referencing e
func (q *TimerQueue) PendingFor(e core.Entity) int {
	n := 0
	for _, t := range q.timers {
		for _, o := range t.owners {
			if o == e {
				n++
				break
			}
		}
	}
	return n
}

// Due returns the tick a timer fires on
func (q *TimerQueue) Due(id core.TimerID) (uint64, bool) {
	t, ok := q.timers[id]
	if !ok {
		return 0, false
	}
	return t.due, true
}

// Fire runs every timer due at or before now in (due, id) order
// Each entry is removed before its callback runs; callbacks may schedule new timers,
// which never fire in the same pass. Entries whose owners are not alive are dropped
func (q *TimerQueue) Fire(now uint64, alive func(core.Entity) bool) int {
	var due []*timerEntry
	for _, t := range q.timers {
		if t.due <= now {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return 0
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})

	fired := 0
	for _, t := range due {
		// An earlier callback in this pass may have cancelled it
		if _, ok := q.timers[t.id]; !ok {
			continue
		}
		delete(q.timers, t.id)
		if !ownersAlive(t.owners, alive) {
			continue
		}
		t.fn()
		fired++
	}
	return fired
}

func ownersAlive(owners []core.Entity, alive func(core.Entity) bool) bool {
	if alive == nil {
		return true
	}
	for _, o := range owners {
		if !alive(o) {
			return false
		}
	}
	return true
}
