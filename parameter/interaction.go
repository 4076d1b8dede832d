package parameter

import "time"

// Interaction eligibility
const (
	// InteractionProximity is the maximum horizontal separation of an eligible pair
	InteractionProximity = 40.0

	// InteractionTriggerChance is the per-tick Bernoulli trial for an eligible pair
	InteractionTriggerChance = 0.02
)

// Interaction stage durations
const (
	InteractionStage1Duration      = 3 * time.Second
	InteractionStage2Duration      = 2 * time.Second
	InteractionReappearDuration    = 500 * time.Millisecond
	InteractionWalkingAwayDuration = 1500 * time.Millisecond

	// InteractionWalkAwaySpeed is the separation step per member in pixels per tick
	InteractionWalkAwaySpeed = 1.0
)
