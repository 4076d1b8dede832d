package event

// EventType represents the type of simulation event
type EventType int

const (
	// === Lifecycle ===

	// EventSimulationStarted signals agents were created and the clock armed
	// Trigger: Simulation.Start | Consumer: JumpSystem | Payload: *StartedPayload
	EventSimulationStarted EventType = iota

	// EventSimulationStopped signals every agent and timer was torn down
	// Trigger: Simulation.Stop | Payload: nil
	EventSimulationStopped

	// === Population ===

	// EventAgentSpawned signals a new agent in the registry
	// Trigger: Start, SetAgentCount | Payload: *AgentPayload
	EventAgentSpawned

	// EventAgentRemoved signals an agent left the registry, its timers are already cancelled
	// Trigger: Stop, SetAgentCount | Consumer: InteractionSystem | Payload: *AgentPayload
	EventAgentRemoved

	// EventAgentSizeChanged signals a new shared companion size
	// Trigger: SetAgentSize | Payload: *SizePayload
	EventAgentSizeChanged

	// === Primary ===

	// EventJumpStarted signals the primary left the ground
	// Trigger: JumpSystem | Consumer: audio cue | Payload: *AgentPayload
	EventJumpStarted

	// EventJumpLanded signals the primary returned to the ground
	// Trigger: JumpSystem | Payload: *AgentPayload
	EventJumpLanded

	// === Companions ===

	// EventFleeStarted signals a companion entered its run state this tick
	// Trigger: FleeSystem | Payload: *AgentPayload
	EventFleeStarted

	// EventInteractionStarted signals a new bonded pair
	// Trigger: InteractionSystem | Payload: *PairPayload
	EventInteractionStarted

	// EventInteractionStage signals a pair advanced to a new stage
	// Trigger: InteractionSystem | Payload: *PairPayload
	EventInteractionStage

	// EventInteractionCompleted signals a pair finished walking away and was dissolved
	// Trigger: InteractionSystem | Payload: *PairPayload
	EventInteractionCompleted

	// EventInteractionInterrupted signals a pair aborted by flee or member removal
	// Trigger: InteractionSystem | Payload: *PairPayload
	EventInteractionInterrupted
)

var eventTypeNames = map[EventType]string{
	EventSimulationStarted:      "simulation_started",
	EventSimulationStopped:      "simulation_stopped",
	EventAgentSpawned:           "agent_spawned",
	EventAgentRemoved:           "agent_removed",
	EventAgentSizeChanged:       "agent_size_changed",
	EventJumpStarted:            "jump_started",
	EventJumpLanded:             "jump_landed",
	EventFleeStarted:            "flee_started",
	EventInteractionStarted:     "interaction_started",
	EventInteractionStage:       "interaction_stage",
	EventInteractionCompleted:   "interaction_completed",
	EventInteractionInterrupted: "interaction_interrupted",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is a single simulation occurrence stamped with the tick that produced it
type Event struct {
	Type    EventType
	Payload any
	Tick    uint64
}
