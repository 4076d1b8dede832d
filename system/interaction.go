package system

import (
	"math"
	"sort"
	"sync/atomic"

	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/engine"
	"github.com/YuliaD2609/DesktopPotato/event"
	"github.com/YuliaD2609/DesktopPotato/parameter"
	"github.com/YuliaD2609/DesktopPotato/status"
	"github.com/YuliaD2609/DesktopPotato/vmath"
)

// InteractionSystem owns bonded pairs and drives their choreography
// Stage1 -> Stage2 -> Reappearing -> WalkingAway -> Idle, each step on a one-shot timer
// Member agents only hold a pointer to the pair record; links are created and cleared here
type InteractionSystem struct {
	world      *engine.World
	pairs      map[uint64]*component.Pair
	nextPairID uint64

	statActive      *atomic.Int64
	statStarted     *atomic.Int64
	statCompleted   *atomic.Int64
	statInterrupted *atomic.Int64
}

// NewInteractionSystem creates a new interaction coordinator
func NewInteractionSystem(world *engine.World) *InteractionSystem {
	reg := world.Resources.Status
	s := &InteractionSystem{
		world:           world,
		pairs:           make(map[uint64]*component.Pair),
		nextPairID:      1,
		statActive:      reg.Ints.Get(status.KeyActivePairs),
		statStarted:     reg.Ints.Get(status.KeyInteractionsStarted),
		statCompleted:   reg.Ints.Get(status.KeyInteractionsCompleted),
		statInterrupted: reg.Ints.Get(status.KeyInteractionsAborted),
	}
	return s
}

func (s *InteractionSystem) Name() string {
	return "interaction"
}

func (s *InteractionSystem) Priority() int {
	return parameter.PriorityInteraction
}

func (s *InteractionSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventAgentRemoved,
		event.EventSimulationStopped,
	}
}

// HandleEvent releases the survivor of a removed member and forgets pairs on stop
// Removals during a stop are not interruptions, the stop event drops the pairs
func (s *InteractionSystem) HandleEvent(ev event.Event) {
	switch ev.Type {
	case event.EventAgentRemoved:
		if s.world.Clearing() {
			return
		}
		payload, ok := ev.Payload.(*event.AgentPayload)
		if !ok {
			return
		}
		for _, pair := range s.pairs {
			if pair.Has(payload.Entity) {
				s.abort(pair, event.InterruptRemoved)
				return
			}
		}
	case event.EventSimulationStopped:
		clear(s.pairs)
		s.statActive.Store(0)
	}
}

// Update sweeps orphans, moves walking-away pairs and starts new interactions
func (s *InteractionSystem) Update() {
	s.sweepOrphans()
	s.walkAway()
	s.trigger()
}

// Pairs returns the number of live pairs
func (s *InteractionSystem) Pairs() int {
	return len(s.pairs)
}

// Begin bonds a free kind-A actor with a free kind-B listener and enters stage 1
func (s *InteractionSystem) Begin(actorID, listenerID core.Entity) bool {
	actor := s.world.Agent(actorID)
	listener := s.world.Agent(listenerID)
	if !s.eligible(actor) || !s.eligible(listener) {
		return false
	}
	if actor.Kind != component.KindCompanionA || listener.Kind != component.KindCompanionB {
		return false
	}

	pair := &component.Pair{
		ID:       s.nextPairID,
		Actor:    actor.ID,
		Listener: listener.ID,
		Stage:    component.PairStage1,
	}
	s.nextPairID++
	s.pairs[pair.ID] = pair

	// Face each other
	if actor.X <= listener.X {
		actor.Facing, listener.Facing = component.FacingRight, component.FacingLeft
	} else {
		actor.Facing, listener.Facing = component.FacingLeft, component.FacingRight
	}

	actor.SetState(component.StateInteracting)
	actor.Stage = component.Stage1
	listener.SetState(component.StateHidden)
	listener.Visible = false
	actor.Pair = pair
	listener.Pair = pair

	pair.Timer = s.schedule(pair, s.world.Resources.Tuning.Stage1Ticks)

	s.statStarted.Add(1)
	s.statActive.Store(int64(len(s.pairs)))
	s.world.Emit(event.EventInteractionStarted, s.payload(pair, event.InterruptNone))
	return true
}

// Interrupt aborts e's pair, both members run away from the cursor on a flee
func (s *InteractionSystem) Interrupt(e core.Entity, reason event.InterruptReason) bool {
	a := s.world.Agent(e)
	if a == nil || a.Pair == nil {
		return false
	}
	pair, ok := s.pairs[a.Pair.ID]
	if !ok {
		return false
	}
	s.abort(pair, reason)
	return true
}

func (s *InteractionSystem) eligible(a *component.Agent) bool {
	return a != nil && a.IsCompanion() && a.Pair == nil && !a.Threatened && a.State.IsFree()
}

func (s *InteractionSystem) schedule(pair *component.Pair, delay uint64) core.TimerID {
	return s.world.Schedule(delay, func() { s.advance(pair) }, pair.Actor, pair.Listener)
}

// advance moves a pair to its next stage when its timer fires
func (s *InteractionSystem) advance(pair *component.Pair) {
	if s.pairs[pair.ID] != pair {
		return
	}
	actor := s.world.Agent(pair.Actor)
	listener := s.world.Agent(pair.Listener)
	if actor == nil || listener == nil {
		return
	}
	t := &s.world.Resources.Tuning

	switch pair.Stage {
	case component.PairStage1:
		actor.Stage = component.Stage2
		pair.Stage = component.PairStage2
		pair.Timer = s.schedule(pair, t.Stage2Ticks)

	case component.PairStage2:
		actor.SetState(component.StateReappearing)
		listener.SetState(component.StateReappearing)
		listener.Visible = true
		actor.Resync = true
		listener.Resync = true
		pair.Stage = component.PairReappearing
		pair.Timer = s.schedule(pair, t.ReappearTicks)

	case component.PairReappearing:
		// Face away from each other
		if actor.X <= listener.X {
			actor.Facing, listener.Facing = component.FacingLeft, component.FacingRight
		} else {
			actor.Facing, listener.Facing = component.FacingRight, component.FacingLeft
		}
		actor.SetState(component.StateWalkingAway)
		listener.SetState(component.StateWalkingAway)
		pair.Stage = component.PairWalkingAway
		pair.Timer = s.schedule(pair, t.WalkingAwayTicks)

	case component.PairWalkingAway:
		s.finish(pair)
		return
	}

	s.world.Emit(event.EventInteractionStage, s.payload(pair, event.InterruptNone))
}

// finish completes a pair symmetrically
func (s *InteractionSystem) finish(pair *component.Pair) {
	for _, id := range [2]core.Entity{pair.Actor, pair.Listener} {
		if a := s.world.Agent(id); a != nil {
			a.SetState(component.StateIdle)
			a.Pair = nil
			a.Visible = true
		}
	}
	delete(s.pairs, pair.ID)
	pair.Timer = 0

	s.statCompleted.Add(1)
	s.statActive.Store(int64(len(s.pairs)))
	s.world.Emit(event.EventInteractionCompleted, s.payload(pair, event.InterruptNone))
}

// abort clears a pair, releasing members per reason
// Flee sends live members running from the cursor, every other reason leaves them idle
func (s *InteractionSystem) abort(pair *component.Pair, reason event.InterruptReason) {
	s.world.Resources.Timers.Cancel(pair.Timer)
	pair.Timer = 0
	delete(s.pairs, pair.ID)

	cur := &s.world.Resources.Cursor
	for _, id := range [2]core.Entity{pair.Actor, pair.Listener} {
		a := s.world.Agent(id)
		if a == nil || a.Pair != pair {
			continue
		}
		a.Pair = nil
		a.Visible = true
		a.Resync = true
		if reason == event.InterruptFlee && cur.Valid {
			away := AwayFrom(a, cur.X)
			a.SetState(component.RunState(away))
			a.Facing = away
		} else {
			a.SetState(component.StateIdle)
		}
	}

	s.statInterrupted.Add(1)
	s.statActive.Store(int64(len(s.pairs)))
	s.world.Emit(event.EventInteractionInterrupted, s.payload(pair, reason))
}

// sweepOrphans resets any companion left bonded without a live pair
func (s *InteractionSystem) sweepOrphans() {
	for _, a := range s.world.Companions() {
		if !a.State.IsBonded() && a.Pair == nil {
			continue
		}
		if a.Pair != nil {
			pair, ok := s.pairs[a.Pair.ID]
			if ok && pair == a.Pair && s.world.Alive(pair.Other(a.ID)) {
				continue
			}
			if ok {
				s.abort(pair, event.InterruptOrphan)
				continue
			}
		}

		a.Pair = nil
		a.Visible = true
		a.Resync = true
		a.SetState(component.StateIdle)
	}
}

// walkAway moves walking-away pairs apart at walk-away speed, clamped without bouncing
func (s *InteractionSystem) walkAway() {
	res := s.world.Resources
	lo, hi := vmath.HorizontalBounds(res.WorkArea, res.AgentSize)
	speed := res.Tuning.WalkAwaySpeed

	for _, pair := range s.sortedPairs() {
		if pair.Stage != component.PairWalkingAway {
			continue
		}
		for _, id := range [2]core.Entity{pair.Actor, pair.Listener} {
			a := s.world.Agent(id)
			if a == nil {
				continue
			}
			step := speed
			if a.Facing == component.FacingLeft {
				step = -step
			}
			a.X = vmath.Clamp(a.X+step, lo, hi)
		}
	}
}

// trigger rolls one trial per close free A-B pair, each agent joins at most one pair per tick
func (s *InteractionSystem) trigger() {
	res := s.world.Resources
	t := &res.Tuning

	var actors, listeners []*component.Agent
	for _, a := range s.world.Companions() {
		if !s.eligible(a) {
			continue
		}
		if a.Kind == component.KindCompanionA {
			actors = append(actors, a)
		} else {
			listeners = append(listeners, a)
		}
	}

	for _, actor := range actors {
		for _, listener := range listeners {
			if listener.Pair != nil {
				continue
			}
			if math.Abs(actor.X-listener.X) >= t.Proximity {
				continue
			}
			if !res.Rng.Chance(t.TriggerChance) {
				continue
			}
			if s.Begin(actor.ID, listener.ID) {
				break
			}
		}
	}
}

// sortedPairs returns live pairs in creation order
func (s *InteractionSystem) sortedPairs() []*component.Pair {
	out := make([]*component.Pair, 0, len(s.pairs))
	for _, p := range s.pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *InteractionSystem) payload(pair *component.Pair, reason event.InterruptReason) *event.PairPayload {
	return &event.PairPayload{
		PairID:   pair.ID,
		Actor:    pair.Actor,
		Listener: pair.Listener,
		Stage:    pair.Stage,
		Reason:   reason,
	}
}
