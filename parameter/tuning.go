package parameter

// Tuning groups every behavior knob the systems read at runtime
// Durations are expressed in ticks so timers stay on the simulation clock
type Tuning struct {
	// Steering
	DefaultOffset   float64
	LeadOffset      float64
	TrailOffset     float64
	Sensitivity     float64
	VerticalLift    float64
	FollowThreshold float64
	LerpFactor      float64

	// Jump
	JumpDelayMinTicks uint64
	JumpDelayMaxTicks uint64
	JumpTicks         uint64
	JumpHeight        float64

	// Companion baseline
	ResampleChance float64
	IdleWeight     float64
	WalkLeftWeight float64
	WalkSpeed      float64
	SitOffset      int
	WalkScale      float64
	WalkLift       int

	// Flee
	AvoidDistance float64
	RunSpeed      float64

	// Interaction
	Proximity        float64
	TriggerChance    float64
	Stage1Ticks      uint64
	Stage2Ticks      uint64
	ReappearTicks    uint64
	WalkingAwayTicks uint64
	WalkAwaySpeed    float64
}

// DefaultTuning returns the production values at TickRate
func DefaultTuning() Tuning {
	return Tuning{
		DefaultOffset:   SteeringDefaultOffset,
		LeadOffset:      SteeringLeadOffset,
		TrailOffset:     SteeringTrailOffset,
		Sensitivity:     SteeringSensitivity,
		VerticalLift:    SteeringVerticalLift,
		FollowThreshold: SteeringFollowThreshold,
		LerpFactor:      SteeringLerpFactor,

		JumpDelayMinTicks: TicksFor(JumpDelayMin),
		JumpDelayMaxTicks: TicksFor(JumpDelayMax),
		JumpTicks:         TicksFor(JumpDuration),
		JumpHeight:        JumpHeight,

		ResampleChance: CompanionResampleChance,
		IdleWeight:     CompanionIdleWeight,
		WalkLeftWeight: CompanionWalkLeftWeight,
		WalkSpeed:      CompanionWalkSpeed,
		SitOffset:      CompanionSitOffset,
		WalkScale:      CompanionWalkScale,
		WalkLift:       CompanionWalkLift,

		AvoidDistance: FleeAvoidDistance,
		RunSpeed:      FleeRunSpeed,

		Proximity:        InteractionProximity,
		TriggerChance:    InteractionTriggerChance,
		Stage1Ticks:      TicksFor(InteractionStage1Duration),
		Stage2Ticks:      TicksFor(InteractionStage2Duration),
		ReappearTicks:    TicksFor(InteractionReappearDuration),
		WalkingAwayTicks: TicksFor(InteractionWalkingAwayDuration),
		WalkAwaySpeed:    InteractionWalkAwaySpeed,
	}
}

// TotalInteractionTicks is the undisturbed length of one choreography
func (t Tuning) TotalInteractionTicks() uint64 {
	return t.Stage1Ticks + t.Stage2Ticks + t.ReappearTicks + t.WalkingAwayTicks
}
