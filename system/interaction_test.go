package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/engine"
	"github.com/YuliaD2609/DesktopPotato/event"
	"github.com/YuliaD2609/DesktopPotato/parameter"
	"github.com/YuliaD2609/DesktopPotato/status"
)

// shortChoreography keeps stage timings small and deterministic
func shortChoreography() parameter.Tuning {
	t := quietTuning()
	t.Stage1Ticks = 10
	t.Stage2Ticks = 5
	t.ReappearTicks = 3
	t.WalkingAwayTicks = 50
	return t
}

func TestInteraction_TriggersWhenClose(t *testing.T) {
	tune := shortChoreography()
	tune.TriggerChance = 1
	f := newFixture(t, 2, tune)
	f.sim.Start()
	ids := f.placeCompanions(300, 320)

	f.clock.Advance(1)
	actor := f.agent(t, ids[0])
	listener := f.agent(t, ids[1])

	assert.Equal(t, component.StateInteracting, actor.State)
	assert.Equal(t, component.Stage1, actor.Stage)
	assert.Equal(t, component.SpriteCompanionAInteract1, actor.Sprite)
	assert.Equal(t, component.StateHidden, listener.State)
	assert.False(t, listener.Visible)
	assert.Equal(t, ids[1], actor.Partner)
	assert.Equal(t, ids[0], listener.Partner)
	assert.Equal(t, component.FacingRight, actor.Facing)
	assert.Equal(t, component.FacingLeft, listener.Facing)
}

func TestInteraction_NoTriggerWhenFar(t *testing.T) {
	tune := shortChoreography()
	tune.TriggerChance = 1
	f := newFixture(t, 2, tune)
	f.sim.Start()
	ids := f.placeCompanions(300, 340)

	f.clock.Advance(5)
	assert.Equal(t, component.StateIdle, f.agent(t, ids[0]).State)
	assert.Zero(t, f.interactions(t).Pairs())
}

func TestInteraction_BeginRejectsIneligible(t *testing.T) {
	f := newFixture(t, 3, shortChoreography())
	f.sim.Start()
	ids := f.placeCompanions(300, 300, 300)
	is := f.interactions(t)

	f.sim.Do(func(w *engine.World) {
		assert.False(t, is.Begin(ids[1], ids[0]), "actor must be kind A")
		assert.False(t, is.Begin(ids[0], ids[2]), "same kind")
		assert.False(t, is.Begin(ids[0], core.Entity(999)), "unknown listener")
		require.True(t, is.Begin(ids[0], ids[1]))
		assert.False(t, is.Begin(ids[2], ids[1]), "listener already bonded")
	})
}

func TestInteraction_CompletesSymmetrically(t *testing.T) {
	tune := shortChoreography()
	f := newFixture(t, 2, tune)
	f.sim.Start()
	ids := f.placeCompanions(300, 300)

	var evs []event.Event
	f.sim.Subscribe(func(ev event.Event) { evs = append(evs, ev) },
		event.EventInteractionStarted, event.EventInteractionStage, event.EventInteractionCompleted)

	f.begin(t, ids[0], ids[1])

	stages := map[component.PairStage]func(a, l engine.AgentView){
		component.PairStage2: func(a, l engine.AgentView) {
			assert.Equal(t, component.SpriteCompanionAInteract2, a.Sprite)
			assert.False(t, l.Visible)
		},
		component.PairReappearing: func(a, l engine.AgentView) {
			assert.Equal(t, component.StateReappearing, a.State)
			assert.Equal(t, component.StateReappearing, l.State)
			assert.Equal(t, component.SpriteCompanionAIdle, a.Sprite)
			assert.Equal(t, component.SpriteCompanionBIdle, l.Sprite)
			assert.True(t, l.Visible)
		},
		component.PairWalkingAway: func(a, l engine.AgentView) {
			assert.Equal(t, component.StateWalkingAway, a.State)
			assert.Equal(t, component.FacingLeft, a.Facing)
			assert.Equal(t, component.FacingRight, l.Facing)
		},
	}

	seen := 0
	for i := uint64(0); i < tune.TotalInteractionTicks(); i++ {
		before := len(evs)
		f.clock.Advance(1)
		snap := f.sim.Snapshot()
		requireLinksConsistent(t, snap)
		if len(evs) > before && evs[len(evs)-1].Type == event.EventInteractionStage {
			payload := evs[len(evs)-1].Payload.(*event.PairPayload)
			a, _ := snap.Agent(ids[0])
			l, _ := snap.Agent(ids[1])
			stages[payload.Stage](a, l)
			seen++
		}
	}
	assert.Equal(t, 3, seen)

	a := f.agent(t, ids[0])
	l := f.agent(t, ids[1])
	assert.Equal(t, component.StateIdle, a.State)
	assert.Equal(t, component.StateIdle, l.State)
	assert.Zero(t, a.Partner)
	assert.Zero(t, l.Partner)
	assert.True(t, l.Visible)
	assert.InDelta(t, 100.0, l.X-a.X, 1e-9, "walked apart for the whole stage")

	require.NotEmpty(t, evs)
	last := evs[len(evs)-1]
	assert.Equal(t, event.EventInteractionCompleted, last.Type)
	assert.Equal(t, tune.TotalInteractionTicks(), last.Tick-evs[0].Tick)
	assert.Equal(t, int64(1), f.sim.Status().Ints.Get(status.KeyInteractionsCompleted).Load())
	assert.Zero(t, f.interactions(t).Pairs())
}

func TestInteraction_FleeInterruptsEveryStage(t *testing.T) {
	tune := shortChoreography()
	// Ticks after begin that land in each stage
	cases := map[string]int{
		"stage1":       2,
		"stage2":       12,
		"reappearing":  16,
		"walking away": 25,
	}
	for name, wait := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, 2, tune)
			f.sim.Start()
			ids := f.placeCompanions(300, 300)
			f.begin(t, ids[0], ids[1])
			f.clock.Advance(wait)
			require.NotZero(t, f.agent(t, ids[0]).Partner)

			a := f.agent(t, ids[0])
			cx := a.X + float64(a.Size)/2
			f.cursor.Move(int(cx)+20, 740)
			f.clock.Advance(2)

			actor := f.agent(t, ids[0])
			listener := f.agent(t, ids[1])
			assert.True(t, actor.State.IsRunning(), "actor %s", actor.State)
			assert.True(t, listener.State.IsRunning(), "listener %s", listener.State)
			assert.Zero(t, actor.Partner)
			assert.Zero(t, listener.Partner)
			assert.True(t, listener.Visible)
			assert.Zero(t, f.interactions(t).Pairs())
			assert.Equal(t, int64(1), f.sim.Status().Ints.Get(status.KeyInteractionsAborted).Load())

			f.sim.Do(func(w *engine.World) {
				assert.Zero(t, w.Resources.Timers.PendingFor(ids[0]))
				assert.Zero(t, w.Resources.Timers.PendingFor(ids[1]))
			})
		})
	}
}

func TestInteraction_RemovalReleasesSurvivor(t *testing.T) {
	f := newFixture(t, 2, shortChoreography())
	f.sim.Start()
	ids := f.placeCompanions(300, 300)

	var reasons []event.InterruptReason
	f.sim.Subscribe(func(ev event.Event) {
		reasons = append(reasons, ev.Payload.(*event.PairPayload).Reason)
	}, event.EventInteractionInterrupted)

	f.begin(t, ids[0], ids[1])
	f.clock.Advance(3)

	// Newest companion is the hidden listener
	require.NoError(t, f.sim.SetAgentCount(1))

	actor := f.agent(t, ids[0])
	assert.Equal(t, component.StateIdle, actor.State)
	assert.Zero(t, actor.Partner)
	assert.True(t, actor.Visible)
	assert.Equal(t, []event.InterruptReason{event.InterruptRemoved}, reasons)

	f.clock.Advance(100)
	assert.Zero(t, f.presenter.Stale(), "no commands reach destroyed surfaces")
	assert.Equal(t, component.StateIdle, f.agent(t, ids[0]).State)
}

func TestInteraction_RemovingActorReleasesListener(t *testing.T) {
	f := newFixture(t, 2, shortChoreography())
	f.sim.Start()
	ids := f.placeCompanions(300, 300)
	f.begin(t, ids[0], ids[1])

	f.sim.Do(func(w *engine.World) { w.RemoveAgent(ids[0]) })

	l := f.agent(t, ids[1])
	assert.Equal(t, component.StateIdle, l.State)
	assert.True(t, l.Visible)
	assert.Zero(t, l.Partner)

	f.clock.Advance(30)
	assert.Equal(t, component.StateIdle, f.agent(t, ids[1]).State)
}

func TestInteraction_OrphanSweep(t *testing.T) {
	f := newFixture(t, 1, shortChoreography())
	f.sim.Start()
	id := f.placeCompanions(300)[0]

	f.sim.Do(func(w *engine.World) {
		a := w.Agent(id)
		a.State = component.StateHidden
		a.Visible = false
	})
	f.clock.Advance(1)

	a := f.agent(t, id)
	assert.Equal(t, component.StateIdle, a.State)
	assert.True(t, a.Visible)
}

func TestInteraction_ResizeMidSequence(t *testing.T) {
	tune := shortChoreography()
	f := newFixture(t, 2, tune)
	f.sim.Start()
	ids := f.placeCompanions(300, 300)
	f.begin(t, ids[0], ids[1])
	f.clock.Advance(2)

	require.NoError(t, f.sim.SetAgentSize(60))
	for _, id := range ids {
		a := f.agent(t, id)
		assert.Equal(t, 60, a.Size)
		assert.Equal(t, float64(800-60-4), a.Y)
		assert.Equal(t, 300.0, a.X)
	}

	f.clock.Advance(int(tune.TotalInteractionTicks()))
	assert.Zero(t, f.interactions(t).Pairs())
	assert.Equal(t, component.StateIdle, f.agent(t, ids[0]).State)
}

func TestInteraction_StopMidSequence(t *testing.T) {
	f := newFixture(t, 2, shortChoreography())
	f.sim.Start()
	ids := f.placeCompanions(300, 300)
	f.begin(t, ids[0], ids[1])
	f.clock.Advance(4)

	var interrupted int
	f.sim.Subscribe(func(ev event.Event) { interrupted++ }, event.EventInteractionInterrupted)
	aborted := f.sim.Status().Ints.Get(status.KeyInteractionsAborted)

	f.sim.Stop()
	assert.Zero(t, f.presenter.Live())
	assert.Zero(t, f.interactions(t).Pairs())
	assert.Zero(t, interrupted, "a stop is not an interruption")
	assert.Zero(t, aborted.Load())
	assert.Zero(t, f.sim.Status().Ints.Get(status.KeyActivePairs).Load())

	f.sim.Start()
	f.clock.Advance(50)
	requireLinksConsistent(t, f.sim.Snapshot())
	assert.Zero(t, f.presenter.Stale())
}
