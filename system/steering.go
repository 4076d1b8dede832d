package system

import (
	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/engine"
	"github.com/YuliaD2609/DesktopPotato/parameter"
	"github.com/YuliaD2609/DesktopPotato/vmath"
)

// SteeringSystem moves the primary agent toward a point offset from the cursor
// The offset flips sides with the cursor's horizontal velocity so the agent trails a moving cursor
type SteeringSystem struct {
	world *engine.World
}

// NewSteeringSystem creates a new steering system
func NewSteeringSystem(world *engine.World) engine.System {
	return &SteeringSystem{world: world}
}

func (s *SteeringSystem) Name() string {
	return "steering"
}

func (s *SteeringSystem) Priority() int {
	return parameter.PrioritySteering
}

// Update runs one steering step, skipped when the cursor sample failed
func (s *SteeringSystem) Update() {
	p := s.world.Primary()
	if p == nil {
		return
	}
	cur := &s.world.Resources.Cursor
	if !cur.Valid {
		return
	}
	t := &s.world.Resources.Tuning

	targetX, targetY := SteeringTarget(cur.X, cur.Y, cur.DeltaX(), t)

	if vmath.Distance(p.X, p.Y, targetX, targetY) <= t.FollowThreshold {
		p.Steering = component.SteeringIdle
		return
	}

	nextX := vmath.Lerp(p.X, targetX, t.LerpFactor)
	stepX := nextX - p.X
	p.X = nextX
	p.Y = vmath.Lerp(p.Y, targetY, t.LerpFactor)
	p.Steering = component.SteeringRunning
	p.Facing = component.FacingFromSign(stepX)
}

// SteeringTarget returns the point the primary agent heads for
func SteeringTarget(cursorX, cursorY, cursorDX float64, t *parameter.Tuning) (float64, float64) {
	offset := t.DefaultOffset
	switch {
	case cursorDX > t.Sensitivity:
		offset = t.LeadOffset
	case cursorDX < -t.Sensitivity:
		offset = t.TrailOffset
	}
	return cursorX + offset, cursorY - t.VerticalLift
}
