package event

import (
	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
)

// StartedPayload describes the population created by Start
type StartedPayload struct {
	Primary    core.Entity
	Companions int
}

// AgentPayload identifies a single agent
type AgentPayload struct {
	Entity core.Entity
	Kind   component.Kind
}

// SizePayload carries the new shared companion size
type SizePayload struct {
	Size int
}

// InterruptReason explains why a pair was aborted
type InterruptReason uint8

const (
	InterruptNone InterruptReason = iota
	InterruptFlee
	InterruptRemoved
	InterruptOrphan
)

func (r InterruptReason) String() string {
	switch r {
	case InterruptFlee:
		return "flee"
	case InterruptRemoved:
		return "removed"
	case InterruptOrphan:
		return "orphan"
	default:
		return "none"
	}
}

// PairPayload describes a bonded pair transition
type PairPayload struct {
	PairID   uint64
	Actor    core.Entity
	Listener core.Entity
	Stage    component.PairStage
	Reason   InterruptReason
}
