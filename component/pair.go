package component

import "github.com/YuliaD2609/DesktopPotato/core"

// PairStage is the choreography phase of a bonded pair
type PairStage uint8

const (
	PairStage1 PairStage = iota
	PairStage2
	PairReappearing
	PairWalkingAway
)

func (s PairStage) String() string {
	switch s {
	case PairStage1:
		return "stage1"
	case PairStage2:
		return "stage2"
	case PairReappearing:
		return "reappearing"
	case PairWalkingAway:
		return "walking_away"
	default:
		return "unknown"
	}
}

// Pair is the bonded-pair record owned by the interaction coordinator
// Member agents hold a pointer to it and must treat it as read-only
type Pair struct {
	ID       uint64
	Actor    core.Entity // Kind A, drives the stage sprites
	Listener core.Entity // Kind B, hidden during stage 1 and 2
	Stage    PairStage
	Timer    core.TimerID
}

// Has reports whether e is a member
func (p *Pair) Has(e core.Entity) bool {
	return p != nil && (p.Actor == e || p.Listener == e)
}

// Other returns the member that is not e
func (p *Pair) Other(e core.Entity) core.Entity {
	if p == nil {
		return 0
	}
	if p.Actor == e {
		return p.Listener
	}
	if p.Listener == e {
		return p.Actor
	}
	return 0
}
