package component

// CompanionState is the per-companion behavior state
type CompanionState uint8

const (
	StateIdle CompanionState = iota
	StateWalkLeft
	StateWalkRight
	StateRunLeft
	StateRunRight
	StateInteracting // Actor during stage 1 and 2, qualified by InteractionStage
	StateHidden      // Listener during stage 1 and 2, simulated but not presented
	StateReappearing
	StateWalkingAway
)

var companionStateNames = [...]string{
	StateIdle:        "idle",
	StateWalkLeft:    "walk_left",
	StateWalkRight:   "walk_right",
	StateRunLeft:     "run_left",
	StateRunRight:    "run_right",
	StateInteracting: "interacting",
	StateHidden:      "hidden",
	StateReappearing: "reappearing",
	StateWalkingAway: "walking_away",
}

func (s CompanionState) String() string {
	if int(s) < len(companionStateNames) {
		return companionStateNames[s]
	}
	return "unknown"
}

// IsWalking reports the baseline walk states
func (s CompanionState) IsWalking() bool {
	return s == StateWalkLeft || s == StateWalkRight
}

// IsRunning reports the flee states
func (s CompanionState) IsRunning() bool {
	return s == StateRunLeft || s == StateRunRight
}

// IsFree reports states the baseline engine owns and interactions may start from
func (s CompanionState) IsFree() bool {
	return s == StateIdle || s.IsWalking()
}

// IsBonded reports states that only exist inside a bonded pair
func (s CompanionState) IsBonded() bool {
	switch s {
	case StateInteracting, StateHidden, StateReappearing, StateWalkingAway:
		return true
	}
	return false
}

// UsesWalkPose reports states drawn with the smaller walking pose
func (s CompanionState) UsesWalkPose() bool {
	return s.IsWalking() || s.IsRunning() || s == StateWalkingAway
}

// Direction returns the travel facing of a walk or run state
func (s CompanionState) Direction() (Facing, bool) {
	switch s {
	case StateWalkLeft, StateRunLeft:
		return FacingLeft, true
	case StateWalkRight, StateRunRight:
		return FacingRight, true
	}
	return FacingRight, false
}

// WalkState returns the walk state heading toward f
func WalkState(f Facing) CompanionState {
	if f == FacingLeft {
		return StateWalkLeft
	}
	return StateWalkRight
}

// RunState returns the flee state heading toward f
func RunState(f Facing) CompanionState {
	if f == FacingLeft {
		return StateRunLeft
	}
	return StateRunRight
}

// companionTransitions is the explicit transition table for companion states
// Self-transitions are always valid and not listed
var companionTransitions = map[CompanionState][]CompanionState{
	StateIdle:        {StateWalkLeft, StateWalkRight, StateRunLeft, StateRunRight, StateInteracting, StateHidden},
	StateWalkLeft:    {StateIdle, StateWalkRight, StateRunLeft, StateRunRight, StateInteracting, StateHidden},
	StateWalkRight:   {StateIdle, StateWalkLeft, StateRunLeft, StateRunRight, StateInteracting, StateHidden},
	StateRunLeft:     {StateRunRight, StateWalkLeft, StateWalkRight},
	StateRunRight:    {StateRunLeft, StateWalkLeft, StateWalkRight},
	StateInteracting: {StateReappearing, StateRunLeft, StateRunRight, StateIdle},
	StateHidden:      {StateReappearing, StateRunLeft, StateRunRight, StateIdle},
	StateReappearing: {StateWalkingAway, StateRunLeft, StateRunRight, StateIdle},
	StateWalkingAway: {StateIdle, StateRunLeft, StateRunRight},
}

// CanTransition validates a companion state change against the transition table
func CanTransition(from, to CompanionState) bool {
	if from == to {
		return true
	}
	for _, s := range companionTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// InteractionStage qualifies StateInteracting for the actor
type InteractionStage uint8

const (
	StageNone InteractionStage = iota
	Stage1
	Stage2
)

// SteeringState is the primary agent's follow state
type SteeringState uint8

const (
	SteeringIdle SteeringState = iota
	SteeringRunning
)

func (s SteeringState) String() string {
	if s == SteeringRunning {
		return "running"
	}
	return "idle"
}

// JumpState is the primary agent's jump process state
type JumpState uint8

const (
	JumpWaiting JumpState = iota
	JumpJumping
)

func (s JumpState) String() string {
	if s == JumpJumping {
		return "jumping"
	}
	return "waiting"
}
