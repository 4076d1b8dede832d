package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/YuliaD2609/DesktopPotato/core"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to CompanionState
		want     bool
	}{
		{StateIdle, StateIdle, true},
		{StateIdle, StateWalkLeft, true},
		{StateWalkRight, StateInteracting, true},
		{StateRunLeft, StateIdle, false},
		{StateRunLeft, StateWalkLeft, true},
		{StateRunRight, StateInteracting, false},
		{StateHidden, StateWalkingAway, false},
		{StateHidden, StateReappearing, true},
		{StateWalkingAway, StateRunRight, true},
		{StateWalkingAway, StateWalkLeft, false},
		{StateReappearing, StateIdle, true},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestAgent_SetStateClearsStage(t *testing.T) {
	a := NewAgent(1, KindCompanionA)
	assert.True(t, a.SetState(StateInteracting))
	a.Stage = Stage2

	assert.True(t, a.SetState(StateRunLeft))
	assert.Equal(t, StageNone, a.Stage)

	// Run may not go straight to idle
	assert.False(t, a.SetState(StateIdle))
	assert.Equal(t, StateRunLeft, a.State)
}

func TestSpriteFor(t *testing.T) {
	p := NewAgent(1, KindPrimary)
	assert.Equal(t, SpritePrimaryIdle, SpriteFor(p))
	p.Steering = SteeringRunning
	assert.Equal(t, SpritePrimaryRunning, SpriteFor(p))

	b := NewAgent(2, KindCompanionB)
	assert.Equal(t, SpriteCompanionBIdle, SpriteFor(b))
	b.State = StateWalkingAway
	assert.Equal(t, SpriteCompanionBWalk, SpriteFor(b))

	a := NewAgent(3, KindCompanionA)
	a.State, a.Stage = StateInteracting, Stage1
	assert.Equal(t, SpriteCompanionAInteract1, SpriteFor(a))
	a.Stage = Stage2
	assert.Equal(t, SpriteCompanionAInteract2, SpriteFor(a))
	a.State, a.Stage = StateReappearing, StageNone
	assert.Equal(t, SpriteCompanionAIdle, SpriteFor(a))
}

func TestKindDefaults(t *testing.T) {
	assert.Equal(t, KindCompanionA, CompanionKindFor(0))
	assert.Equal(t, KindCompanionB, CompanionKindFor(3))
	assert.Equal(t, FacingLeft, KindCompanionB.DefaultFacing())
	assert.Equal(t, FacingRight, KindCompanionA.DefaultFacing())
	assert.Equal(t, KindCompanionA, KindCompanionB.Opposite())
	assert.Equal(t, FacingLeft, FacingFromSign(0))
	assert.Equal(t, FacingRight, FacingFromSign(0.5))
}

func TestPair_NilSafe(t *testing.T) {
	var p *Pair
	assert.False(t, p.Has(1))
	assert.Equal(t, core.Entity(0), p.Other(1))

	p = &Pair{Actor: 4, Listener: 9}
	assert.Equal(t, core.Entity(9), p.Other(4))
	assert.Equal(t, core.Entity(4), p.Other(9))
	assert.Equal(t, core.Entity(0), p.Other(5))
}

func TestVisual_JumpLiftAndRounding(t *testing.T) {
	a := NewAgent(1, KindPrimary)
	a.X, a.Y, a.Size = 10.6, 200.4, 100
	a.JumpLift = 30

	v := a.Visual()
	assert.Equal(t, 11, v.X)
	assert.Equal(t, 170, v.Y)

	prev := v
	a.Facing = FacingLeft
	d := a.Visual().Diff(prev)
	assert.True(t, d.Facing)
	assert.False(t, d.Position)
	assert.True(t, d.Any())
}
