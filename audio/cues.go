package audio

import (
	"sync/atomic"

	"github.com/YuliaD2609/DesktopPotato/event"
	"github.com/YuliaD2609/DesktopPotato/logging"
)

// DefaultVolume is the cue volume relative to full scale
const DefaultVolume = 0.4

// Cues plays short tones for simulation events while enabled
type Cues struct {
	player  Player
	volume  float64
	enabled atomic.Bool
	played  atomic.Int64
	log     *logging.Logger
}

// NewCues creates a cue player, disabled until SetEnabled(true)
func NewCues(player Player, volume float64, log *logging.Logger) *Cues {
	if log == nil {
		log = logging.Nop()
	}
	return &Cues{player: player, volume: volume, log: log}
}

// EventTypes lists the events that produce a sound
func (c *Cues) EventTypes() []event.EventType {
	return []event.EventType{event.EventJumpStarted, event.EventJumpLanded}
}

// SetEnabled toggles playback
func (c *Cues) SetEnabled(on bool) {
	c.enabled.Store(on)
}

// Enabled reports whether cues play
func (c *Cues) Enabled() bool {
	return c.enabled.Load()
}

// Played returns the number of cues sent to the player
func (c *Cues) Played() int64 {
	return c.played.Load()
}

// HandleEvent plays the cue for ev, if any
func (c *Cues) HandleEvent(ev event.Event) {
	if !c.enabled.Load() {
		return
	}

	var s Sound
	switch ev.Type {
	case event.EventJumpStarted:
		s = SoundJump
	case event.EventJumpLanded:
		s = SoundLand
	default:
		return
	}

	st, err := NewSound(s, c.volume)
	if err != nil {
		c.log.Warn().Err(err).Str("sound", s.String()).Msg("cue unavailable")
		return
	}
	c.player.Play(st)
	c.played.Add(1)
}
