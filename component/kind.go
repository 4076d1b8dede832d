package component

import "github.com/YuliaD2609/DesktopPotato/vmath"

// Kind selects the behavior driver, sprite set and default facing of an agent
type Kind uint8

const (
	KindPrimary Kind = iota
	KindCompanionA
	KindCompanionB
)

func (k Kind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindCompanionA:
		return "companion_a"
	case KindCompanionB:
		return "companion_b"
	default:
		return "unknown"
	}
}

// IsCompanion reports whether the kind is driven by the companion engine
func (k Kind) IsCompanion() bool {
	return k == KindCompanionA || k == KindCompanionB
}

// Opposite returns the interaction counterpart kind
func (k Kind) Opposite() Kind {
	switch k {
	case KindCompanionA:
		return KindCompanionB
	case KindCompanionB:
		return KindCompanionA
	default:
		return k
	}
}

// DefaultFacing returns the spawn facing, B faces left so fresh pairs look at each other
func (k Kind) DefaultFacing() Facing {
	if k == KindCompanionB {
		return FacingLeft
	}
	return FacingRight
}

// CompanionKindFor returns the kind for the n-th companion (zero-based), alternating A/B
func CompanionKindFor(n int) Kind {
	if n%2 == 0 {
		return KindCompanionA
	}
	return KindCompanionB
}

// Facing is the horizontal orientation of a sprite
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// FacingFromSign maps a horizontal step to a facing, non-positive steps face left
func FacingFromSign(dx float64) Facing {
	if vmath.Sign(dx) > 0 {
		return FacingRight
	}
	return FacingLeft
}
