package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/engine"
	"github.com/YuliaD2609/DesktopPotato/event"
	"github.com/YuliaD2609/DesktopPotato/parameter"
	"github.com/YuliaD2609/DesktopPotato/status"
)

func TestSteeringTarget_Offsets(t *testing.T) {
	tune := parameter.DefaultTuning()
	tests := []struct {
		name    string
		dx      float64
		targetX float64
	}{
		{"still", 0, 530},
		{"at sensitivity", 5, 530},
		{"moving right", 6, 440},
		{"moving left", -6, 550},
		{"at negative sensitivity", -5, 530},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := SteeringTarget(500, 400, tt.dx, &tune)
			assert.Equal(t, tt.targetX, x)
			assert.Equal(t, 380.0, y)
		})
	}
}

func TestSteering_MovesTowardTarget(t *testing.T) {
	f := newFixture(t, 0, quietTuning())
	f.cursor.Move(500, 400)
	f.sim.Start()

	f.clock.Advance(1)
	p, ok := f.sim.Snapshot().Primary()
	require.True(t, ok)
	assert.InDelta(t, 458.0, p.X, 1e-9)
	assert.InDelta(t, 353.0, p.Y, 1e-9)
	assert.Equal(t, component.SteeringRunning, p.Steering)
	assert.Equal(t, component.FacingRight, p.Facing)
	assert.Equal(t, component.SpritePrimaryRunning, p.Sprite)

	// Settles within the follow threshold and goes idle
	f.clock.Advance(200)
	p, _ = f.sim.Snapshot().Primary()
	assert.Equal(t, component.SteeringIdle, p.Steering)
	assert.InDelta(t, 530.0, p.X, 15)
	assert.InDelta(t, 380.0, p.Y, 15)
}

func TestSteering_FacesLeftWhenStepIsLeft(t *testing.T) {
	f := newFixture(t, 0, quietTuning())
	f.cursor.Move(0, 350)
	f.sim.Start()

	f.clock.Advance(1)
	p, _ := f.sim.Snapshot().Primary()
	assert.Less(t, p.X, 450.0)
	assert.Equal(t, component.FacingLeft, p.Facing)
}

func TestSteering_SkipsFailedSample(t *testing.T) {
	f := newFixture(t, 0, quietTuning())
	f.cursor.Move(500, 400)
	f.cursor.Fail(true)
	f.sim.Start()

	f.clock.Advance(5)
	p, _ := f.sim.Snapshot().Primary()
	assert.Equal(t, 450.0, p.X)
	assert.Equal(t, 350.0, p.Y)
	assert.Equal(t, component.SteeringIdle, p.Steering)
}

// idleCursor parks the cursor so the primary's target equals its spawn point
func idleCursor(f *fixture) {
	f.cursor.Move(450-30, 350+20)
}

func TestJump_LiftsAndLands(t *testing.T) {
	tune := quietTuning()
	tune.JumpDelayMinTicks = 5
	tune.JumpDelayMaxTicks = 5
	tune.JumpTicks = 3
	f := newFixture(t, 0, tune)
	idleCursor(f)
	f.sim.Start()

	f.clock.Advance(4)
	p, _ := f.sim.Snapshot().Primary()
	assert.Equal(t, component.JumpWaiting, p.Jump)

	f.clock.Advance(1)
	p, _ = f.sim.Snapshot().Primary()
	assert.Equal(t, component.JumpJumping, p.Jump)
	assert.Equal(t, 30.0, p.JumpLift)
	assert.Equal(t, 350.0, p.Y, "lift is visual only")

	f.clock.Advance(3)
	p, _ = f.sim.Snapshot().Primary()
	assert.Equal(t, component.JumpWaiting, p.Jump)
	assert.Zero(t, p.JumpLift)
	assert.Equal(t, int64(1), f.sim.Status().Ints.Get(status.KeyJumps).Load())
}

func TestJump_SkippedWhileRunning(t *testing.T) {
	tune := quietTuning()
	tune.JumpDelayMinTicks = 5
	tune.JumpDelayMaxTicks = 5
	f := newFixture(t, 0, tune)
	f.cursor.Move(-10000, -10000)
	f.sim.Start()

	f.clock.Advance(12)
	p, _ := f.sim.Snapshot().Primary()
	assert.Equal(t, component.JumpWaiting, p.Jump)
	assert.Zero(t, f.sim.Status().Ints.Get(status.KeyJumps).Load())
	assert.Equal(t, int64(2), f.sim.Status().Ints.Get(status.KeyJumpsSkipped).Load())
}

func TestJump_NeverOverlaps(t *testing.T) {
	tune := quietTuning()
	tune.JumpDelayMinTicks = 2
	tune.JumpDelayMaxTicks = 6
	tune.JumpTicks = 4
	f := newFixture(t, 0, tune)
	idleCursor(f)

	var seq []event.Event
	f.sim.Subscribe(func(ev event.Event) { seq = append(seq, ev) }, event.EventJumpStarted, event.EventJumpLanded)
	f.sim.Start()

	for i := 0; i < 400; i++ {
		f.clock.Advance(1)
		p, _ := f.sim.Snapshot().Primary()
		pending := 0
		f.sim.Do(func(w *engine.World) { pending = w.Resources.Timers.PendingFor(p.ID) })
		require.LessOrEqual(t, pending, 1, "tick %d", i)
	}

	require.NotEmpty(t, seq)
	for i, ev := range seq {
		want := event.EventJumpStarted
		if i%2 == 1 {
			want = event.EventJumpLanded
		}
		require.Equal(t, want, ev.Type, "event %d", i)
		if i%2 == 1 {
			assert.Equal(t, tune.JumpTicks, ev.Tick-seq[i-1].Tick)
		}
		if i >= 2 && i%2 == 0 {
			gap := ev.Tick - seq[i-1].Tick
			assert.GreaterOrEqual(t, gap, tune.JumpDelayMinTicks)
			assert.LessOrEqual(t, gap, tune.JumpDelayMaxTicks)
		}
	}
}
