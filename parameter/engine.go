package parameter

import "time"

// Simulation Loop Timing
const (
	// TickRate is the fixed simulation rate in Hz
	TickRate = 60

	// TickInterval is the clock period at TickRate (~16.7ms)
	TickInterval = time.Second / TickRate

	// TickMaxBehind is how far the clock may fall behind before it drops ticks instead of bursting
	TickMaxBehind = 2 * TickInterval
)

// Population Defaults, used when configuration is missing or malformed
const (
	DefaultAgentCount = 4
	DefaultAgentSize  = 100

	// PrimarySize is the fixed side length of the primary agent
	PrimarySize = 100
)

// FallbackWorkAreaWidth and FallbackWorkAreaHeight are used until a bounds sample succeeds
const (
	FallbackWorkAreaWidth  = 1920
	FallbackWorkAreaHeight = 1040
)

// EventQueueSize is the initial capacity of the per-tick event buffer
const EventQueueSize = 64

// TicksFor converts a wall-clock duration into whole ticks at TickRate, minimum 1
func TicksFor(d time.Duration) uint64 {
	n := uint64(d / TickInterval)
	if n == 0 {
		return 1
	}
	return n
}
