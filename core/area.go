package core

// Area represents a rectangular screen region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Right returns the exclusive right edge
func (a Area) Right() int {
	return a.X + a.Width
}

// Bottom returns the exclusive bottom edge, the floor agents rest on
func (a Area) Bottom() int {
	return a.Y + a.Height
}

// Empty reports whether the area has no usable surface
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}
