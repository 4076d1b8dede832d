package vmath

import "math"

// --- Scalars ---

// Clamp limits x to [lo, hi]; when hi < lo the range collapses to lo
func Clamp(x, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sign returns -1, 0, or 1
func Sign(x float64) int {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Lerp moves a toward b by fraction t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Round converts to the nearest pixel
func Round(x float64) int {
	return int(math.Round(x))
}

// --- Vectors ---

// Distance returns the euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// --- Randomness ---

// FastRand is a xorshift64 generator, not safe for concurrent use
// Deterministic for a given seed so simulation runs are reproducible
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns an integer in [lo, hi] inclusive
func (r *FastRand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Chance runs a Bernoulli trial with probability p
func (r *FastRand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}
