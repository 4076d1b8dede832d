package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player accepts streamers for playback
type Player interface {
	Play(s beep.Streamer)
}

// Speaker plays through the system audio device via a shared mixer
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates an uninitialized speaker
func NewSpeaker() *Speaker {
	return &Speaker{mixer: &beep.Mixer{}}
}

func (s *Speaker) Name() string {
	return "audio"
}

// Start opens the audio device
func (s *Speaker) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Stop silences the mixer and closes the device
func (s *Speaker) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return nil
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
	return nil
}

// Play mixes st into the output, dropped before Start
func (s *Speaker) Play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}
