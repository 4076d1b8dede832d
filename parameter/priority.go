package parameter

// System Execution Priorities (lower runs first)
// Order is part of the tick contract: later passes may overwrite earlier ones
const (
	PriorityTimer       = 10 // One-shot timers fire before any behavior pass
	PrioritySteering    = 20
	PriorityJump        = 25 // Timer driven, no per-tick work
	PriorityCompanion   = 30 // Sensing and baseline movement
	PriorityInteraction = 40
	PriorityFlee        = 50 // Runs last so flee always wins
)
