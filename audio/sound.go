package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	sampleRate = beep.SampleRate(44100)

	jumpToneFreq     = 660.0
	jumpToneDuration = 120 * time.Millisecond
	landToneFreq     = 220.0
	landToneDuration = 60 * time.Millisecond
)

// Sound identifies a cue
type Sound uint8

const (
	SoundJump Sound = iota
	SoundLand
)

func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundLand:
		return "land"
	default:
		return "unknown"
	}
}

// newTone returns a sine burst of the given length
func newTone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", freq, err)
	}
	return beep.Take(rate.N(d), sine), nil
}

// newVolume scales s, zero or negative volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewSound builds a fresh streamer for a cue at the given volume
func NewSound(s Sound, vol float64) (beep.Streamer, error) {
	switch s {
	case SoundJump:
		tone, err := newTone(sampleRate, jumpToneFreq, jumpToneDuration)
		if err != nil {
			return nil, err
		}
		return newVolume(tone, vol), nil
	case SoundLand:
		tone, err := newTone(sampleRate, landToneFreq, landToneDuration)
		if err != nil {
			return nil, err
		}
		return newVolume(tone, vol*0.5), nil
	}
	return nil, fmt.Errorf("unknown sound %d", s)
}
