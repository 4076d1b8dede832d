package component

// Visual is what a presenter shows for one agent
// The scheduler diffs consecutive visuals and only emits changed fields
type Visual struct {
	X, Y    int
	Size    int
	Sprite  SpriteKey
	Facing  Facing
	Visible bool
}

// VisualDiff flags the fields that changed between two visuals
type VisualDiff struct {
	Position bool
	Size     bool
	Sprite   bool
	Facing   bool
	Visible  bool
}

// Any reports whether any field changed
func (d VisualDiff) Any() bool {
	return d.Position || d.Size || d.Sprite || d.Facing || d.Visible
}

// Diff compares v against the previously presented visual
func (v Visual) Diff(prev Visual) VisualDiff {
	return VisualDiff{
		Position: v.X != prev.X || v.Y != prev.Y,
		Size:     v.Size != prev.Size,
		Sprite:   v.Sprite != prev.Sprite,
		Facing:   v.Facing != prev.Facing,
		Visible:  v.Visible != prev.Visible,
	}
}
