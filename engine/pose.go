package engine

import (
	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/parameter"
	"github.com/YuliaD2609/DesktopPotato/vmath"
)

// WalkSize returns the drawn side of a companion in a walking pose
func (w *World) WalkSize() int {
	return vmath.Round(float64(w.Resources.AgentSize) * w.Resources.Tuning.WalkScale)
}

// SettlePose recomputes an agent's drawn size and vertical baseline from its state
// Companion X is clamped to the work area using the configured size
func (w *World) SettlePose(a *component.Agent) {
	if !a.IsCompanion() {
		a.Size = parameter.PrimarySize
		return
	}

	res := w.Resources
	size := res.AgentSize
	floor := res.WorkArea.Bottom()

	if a.State.UsesWalkPose() {
		ws := w.WalkSize()
		a.Size = ws
		a.Y = float64(floor - ws - res.Tuning.SitOffset - res.Tuning.WalkLift)
	} else {
		a.Size = size
		a.Y = float64(floor - size - res.Tuning.SitOffset)
	}

	lo, hi := vmath.HorizontalBounds(res.WorkArea, size)
	a.X = vmath.Clamp(a.X, lo, hi)
}

// SettlePoses settles every companion
func (w *World) SettlePoses() {
	for _, a := range w.Companions() {
		w.SettlePose(a)
	}
}
