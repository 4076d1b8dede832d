package status

import "sync/atomic"

// Metric keys written by the simulation
const (
	KeyRunning               = "simulation.running"
	KeyTicks                 = "simulation.ticks"
	KeyCompanions            = "companion.count"
	KeyAgentSize             = "companion.size"
	KeyFleeActivations       = "companion.flee_activations"
	KeyActivePairs           = "interaction.active"
	KeyInteractionsStarted   = "interaction.started"
	KeyInteractionsCompleted = "interaction.completed"
	KeyInteractionsAborted   = "interaction.interrupted"
	KeyJumps                 = "primary.jumps"
	KeyJumpsSkipped          = "primary.jumps_skipped"
	KeyPrimaryX              = "primary.x"
	KeyPrimaryY              = "primary.y"
	KeyCursorMisses          = "cursor.misses"
)

// Registry is the telemetry facade
// Systems cache pointers at construction; the tick loop writes atomics directly
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Snapshot copies every metric into a flat map for reporting
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Bools.Count()+r.Ints.Count()+r.Floats.Count())
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	return out
}
