package parameter

import "time"

// Primary agent steering
const (
	// SteeringDefaultOffset keeps the agent trailing to the cursor's right
	SteeringDefaultOffset = 30.0

	// SteeringLeadOffset is used while the cursor moves right, agent chases from the left
	SteeringLeadOffset = -60.0

	// SteeringTrailOffset is used while the cursor moves left
	SteeringTrailOffset = 50.0

	// SteeringSensitivity is the per-tick cursor delta that switches the offset
	SteeringSensitivity = 5.0

	// SteeringVerticalLift raises the target above the cursor
	SteeringVerticalLift = 20.0

	// SteeringFollowThreshold is the dead zone radius around the target
	SteeringFollowThreshold = 15.0

	// SteeringLerpFactor is the fraction of the remaining distance covered per tick
	SteeringLerpFactor = 0.1
)

// Primary agent jump process
const (
	JumpDelayMin = 1 * time.Second
	JumpDelayMax = 10 * time.Second
	JumpDuration = 200 * time.Millisecond
	JumpHeight   = 30.0
)
