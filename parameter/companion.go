package parameter

// Companion baseline behavior, per tick at TickRate
const (
	// CompanionResampleChance is the per-tick probability of picking a new baseline state
	CompanionResampleChance = 0.01

	// CompanionIdleWeight and CompanionWalkLeftWeight partition the resample roll, remainder walks right
	CompanionIdleWeight     = 0.30
	CompanionWalkLeftWeight = 0.35

	// CompanionWalkSpeed is the walking step in pixels per tick
	CompanionWalkSpeed = 0.5
)

// Companion pose
const (
	// CompanionSitOffset lifts the sitting pose off the work-area floor
	CompanionSitOffset = 4

	// CompanionWalkScale shrinks the walking pose relative to the configured size
	CompanionWalkScale = 0.8

	// CompanionWalkLift raises the walking pose above the sitting baseline
	CompanionWalkLift = 6
)

// Flee override
const (
	// FleeAvoidDistance is the cursor radius measured from the agent center
	FleeAvoidDistance = 150.0

	// FleeRunSpeed is the running step in pixels per tick
	FleeRunSpeed = 2.0
)
