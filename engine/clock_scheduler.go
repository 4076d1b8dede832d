package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/parameter"
)

// Clock drives the simulation step function
// Start must not block. Stop must not return until the last step has finished,
// except when called from inside step, where it only prevents further steps
type Clock interface {
	Start(step func())
	Stop()
}

var (
	_ Clock = (*ClockScheduler)(nil)
	_ Clock = (*ManualClock)(nil)
)

// ClockScheduler runs step on a fixed interval with drift correction
type ClockScheduler struct {
	tickInterval time.Duration
	maxBehind    time.Duration

	mu      sync.Mutex
	current *clockRun   // nil while stopped
	running atomic.Bool // Mirrors current != nil for lock-free reads
}

// clockRun is the state of one Start/Stop cycle
type clockRun struct {
	stop   chan struct{}
	done   chan struct{}
	inStep atomic.Bool // Set by the loop goroutine around step
}

// NewClockScheduler creates a scheduler ticking at interval, or TickInterval when zero
func NewClockScheduler(interval time.Duration) *ClockScheduler {
	maxBehind := parameter.TickMaxBehind
	if interval <= 0 {
		interval = parameter.TickInterval
	} else {
		maxBehind = interval * (parameter.TickMaxBehind / parameter.TickInterval)
	}
	return &ClockScheduler{
		tickInterval: interval,
		maxBehind:    maxBehind,
	}
}

// Start begins the scheduler loop, repeated calls are no-ops
func (cs *ClockScheduler) Start(step func()) {
	cs.mu.Lock()
	if cs.current != nil {
		cs.mu.Unlock()
		return
	}
	run := &clockRun{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	cs.current = run
	cs.running.Store(true)
	cs.mu.Unlock()

	core.Go(func() { cs.schedulerLoop(step, run) })
}

// Stop halts the loop and waits for an in-flight step
// While a step is running it returns at once, since the caller may be that step;
// no further step starts and the loop exits when the current one returns
func (cs *ClockScheduler) Stop() {
	cs.mu.Lock()
	run := cs.current
	if run == nil {
		cs.mu.Unlock()
		return
	}
	cs.current = nil
	cs.running.Store(false)
	cs.mu.Unlock()

	close(run.stop)
	if run.inStep.Load() {
		return
	}
	<-run.done
}

// Running reports whether the loop is active
func (cs *ClockScheduler) Running() bool {
	return cs.running.Load()
}

func (cs *ClockScheduler) schedulerLoop(step func(), run *clockRun) {
	defer close(run.done)

	nextTickDeadline := time.Now().Add(cs.tickInterval)

	timer := time.NewTimer(cs.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-run.stop:
			return
		case <-timer.C:
		}

		now := time.Now()
		if now.Before(nextTickDeadline) {
			timer.Reset(nextTickDeadline.Sub(now))
			continue
		}

		// Stop may have raced the timer
		select {
		case <-run.stop:
			return
		default:
		}

		// A panicking step is reported and the clock keeps running
		run.inStep.Store(true)
		core.Recover(step)
		run.inStep.Store(false)

		nextTickDeadline = nextTickDeadline.Add(cs.tickInterval)
		// Too far behind, skip missed ticks rather than bursting to catch up
		if now.Sub(nextTickDeadline) > cs.maxBehind {
			nextTickDeadline = now.Add(cs.tickInterval)
		}

		sleep := time.Until(nextTickDeadline)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// ManualClock steps only when advanced, for deterministic tests and replays
type ManualClock struct {
	mu   sync.Mutex
	step func()
}

// NewManualClock creates a stopped manual clock
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Start records the step function
func (m *ManualClock) Start(step func()) {
	m.mu.Lock()
	m.step = step
	m.mu.Unlock()
}

// Stop forgets the step function, later Advance calls do nothing
func (m *ManualClock) Stop() {
	m.mu.Lock()
	m.step = nil
	m.mu.Unlock()
}

// Advance runs n steps, returning how many ran
func (m *ManualClock) Advance(n int) int {
	ran := 0
	for i := 0; i < n; i++ {
		m.mu.Lock()
		step := m.step
		m.mu.Unlock()
		if step == nil {
			break
		}
		step()
		ran++
	}
	return ran
}
