package component

// SpriteKey names a sprite asset, resolved by the presenter
type SpriteKey string

const (
	SpritePrimaryIdle    SpriteKey = "primary_idle"
	SpritePrimaryRunning SpriteKey = "primary_running"

	SpriteCompanionAIdle      SpriteKey = "companion_a_idle"
	SpriteCompanionAWalk      SpriteKey = "companion_a_walk"
	SpriteCompanionAInteract1 SpriteKey = "companion_a_interact_1"
	SpriteCompanionAInteract2 SpriteKey = "companion_a_interact_2"

	SpriteCompanionBIdle      SpriteKey = "companion_b_idle"
	SpriteCompanionBWalk      SpriteKey = "companion_b_walk"
	SpriteCompanionBInteract1 SpriteKey = "companion_b_interact_1"
	SpriteCompanionBInteract2 SpriteKey = "companion_b_interact_2"
)

// spriteSet is the per-kind companion sprite table
type spriteSet struct {
	idle, walk, interact1, interact2 SpriteKey
}

var companionSprites = map[Kind]spriteSet{
	KindCompanionA: {SpriteCompanionAIdle, SpriteCompanionAWalk, SpriteCompanionAInteract1, SpriteCompanionAInteract2},
	KindCompanionB: {SpriteCompanionBIdle, SpriteCompanionBWalk, SpriteCompanionBInteract1, SpriteCompanionBInteract2},
}

// SpriteFor resolves the sprite for an agent's current state
func SpriteFor(a *Agent) SpriteKey {
	if a.Kind == KindPrimary {
		if a.Steering == SteeringRunning {
			return SpritePrimaryRunning
		}
		return SpritePrimaryIdle
	}

	set, ok := companionSprites[a.Kind]
	if !ok {
		return SpritePrimaryIdle
	}
	switch {
	case a.State == StateInteracting && a.Stage == Stage2:
		return set.interact2
	case a.State == StateInteracting:
		return set.interact1
	case a.State.UsesWalkPose():
		return set.walk
	default:
		return set.idle
	}
}
