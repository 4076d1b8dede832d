package vmath

import "github.com/YuliaD2609/DesktopPotato/core"

// HorizontalBounds returns the [lo, hi] range for the left edge of a square of side size
// kept fully inside the area
func HorizontalBounds(a core.Area, size int) (lo, hi float64) {
	lo = float64(a.X)
	hi = float64(a.Right() - size)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// AreaRandomX returns a random left edge for a square of side size inside the area
func AreaRandomX(a core.Area, size int, rng *FastRand) float64 {
	lo, hi := HorizontalBounds(a, size)
	span := int(hi - lo)
	if span <= 0 {
		return lo
	}
	return lo + float64(rng.Intn(span+1))
}

// Center returns the center of a square with top-left (x, y) and side size
func Center(x, y float64, size int) (float64, float64) {
	half := float64(size) / 2
	return x + half, y + half
}
