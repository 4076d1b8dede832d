package core

// Point represents a 2D screen coordinate in pixels
type Point struct {
	X, Y int
}

// Entity is a stable agent identifier, zero means none
type Entity uint64
