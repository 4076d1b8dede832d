package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/engine"
	"github.com/YuliaD2609/DesktopPotato/parameter"
)

var testArea = core.Area{X: 0, Y: 0, Width: 1000, Height: 800}

type fixture struct {
	sim       *engine.Simulation
	clock     *engine.ManualClock
	cursor    *engine.FakeCursor
	workArea  *engine.FakeWorkArea
	presenter *engine.RecordingPresenter
}

// quietTuning disables every random decision so tests opt into what they exercise
func quietTuning() parameter.Tuning {
	t := parameter.DefaultTuning()
	t.ResampleChance = 0
	t.TriggerChance = 0
	t.JumpDelayMinTicks = 100000
	t.JumpDelayMaxTicks = 100000
	return t
}

func newFixture(t *testing.T, count int, tuning parameter.Tuning) *fixture {
	t.Helper()
	f := &fixture{
		clock:     engine.NewManualClock(),
		cursor:    engine.NewFakeCursor(-10000, -10000),
		workArea:  engine.NewFakeWorkArea(testArea),
		presenter: engine.NewRecordingPresenter(),
	}
	f.sim = NewSimulation(
		engine.SimulationConfig{AgentCount: count, AgentSize: 100},
		f.cursor, f.workArea, f.presenter,
		engine.WithClock(f.clock),
		engine.WithSeed(1234),
		engine.WithTuning(tuning),
	)
	t.Cleanup(f.sim.Stop)
	return f
}

// interactions digs the coordinator out of the installed systems
func (f *fixture) interactions(t *testing.T) *InteractionSystem {
	t.Helper()
	var found *InteractionSystem
	f.sim.Do(func(w *engine.World) {
		for _, s := range w.Systems() {
			if is, ok := s.(*InteractionSystem); ok {
				found = is
			}
		}
	})
	require.NotNil(t, found)
	return found
}

// placeCompanions sets companion X positions in creation order
func (f *fixture) placeCompanions(xs ...float64) []core.Entity {
	var ids []core.Entity
	f.sim.Do(func(w *engine.World) {
		for i, a := range w.Companions() {
			if i < len(xs) {
				a.X = xs[i]
			}
			ids = append(ids, a.ID)
		}
	})
	return ids
}

// begin bonds actor and listener directly
func (f *fixture) begin(t *testing.T, actor, listener core.Entity) {
	t.Helper()
	is := f.interactions(t)
	ok := false
	f.sim.Do(func(w *engine.World) { ok = is.Begin(actor, listener) })
	require.True(t, ok)
}

func (f *fixture) agent(t *testing.T, id core.Entity) engine.AgentView {
	t.Helper()
	v, ok := f.sim.Snapshot().Agent(id)
	require.True(t, ok, "agent %d missing", id)
	return v
}

// requireLinksConsistent checks partner symmetry and that hidden agents are bonded
func requireLinksConsistent(t *testing.T, snap engine.Snapshot) {
	t.Helper()
	for _, c := range snap.Companions() {
		if c.State == component.StateHidden {
			require.NotZero(t, c.Partner, "hidden agent %d without partner", c.ID)
		}
		if c.Partner == 0 {
			continue
		}
		p, ok := snap.Agent(c.Partner)
		require.True(t, ok, "agent %d linked to dead partner", c.ID)
		require.Equal(t, c.ID, p.Partner, "link %d -> %d not mutual", c.ID, c.Partner)
	}
}
