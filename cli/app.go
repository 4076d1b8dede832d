package cli

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/YuliaD2609/DesktopPotato/audio"
	"github.com/YuliaD2609/DesktopPotato/config"
	"github.com/YuliaD2609/DesktopPotato/engine"
	"github.com/YuliaD2609/DesktopPotato/event"
	"github.com/YuliaD2609/DesktopPotato/logging"
	"github.com/YuliaD2609/DesktopPotato/service"
	"github.com/YuliaD2609/DesktopPotato/status"
	"github.com/YuliaD2609/DesktopPotato/system"
)

// sizeStep is the agent size change per grow/shrink command
const sizeStep = 10

// app is one simulation bound to its adapters and persisted settings
type app struct {
	mu   sync.Mutex
	cfg  config.Config
	path string
	log  *logging.Logger

	sim     *engine.Simulation
	cues    *audio.Cues
	speaker *audio.Speaker
}

// appPorts are the adapters a front end provides
type appPorts struct {
	cursor    service.CursorProvider
	workArea  service.WorkAreaProvider
	presenter service.SurfacePresenter
	player    audio.Player // nil selects the system speaker
	clock     engine.Clock // nil selects a scheduler at the configured tick rate
}

func newApp(cfg config.Config, path string, ports appPorts, log *logging.Logger) *app {
	a := &app{cfg: cfg, path: path, log: log}

	clock := ports.clock
	if clock == nil {
		clock = engine.NewClockScheduler(time.Second / time.Duration(cfg.Simulation.TickRate))
	}

	a.sim = system.NewSimulation(
		engine.SimulationConfig{
			AgentCount: cfg.Simulation.AgentCount,
			AgentSize:  cfg.Simulation.AgentSize,
		},
		ports.cursor, ports.workArea, ports.presenter,
		engine.WithClock(clock),
		engine.WithSeed(cfg.Simulation.Seed),
		engine.WithLogger(log.Sub("simulation")),
	)

	player := ports.player
	if player == nil {
		a.speaker = audio.NewSpeaker()
		player = a.speaker
	}
	a.cues = audio.NewCues(player, audio.DefaultVolume, log.Sub("audio"))
	a.cues.SetEnabled(cfg.Sound)
	a.sim.Subscribe(a.cues.HandleEvent, a.cues.EventTypes()...)

	return a
}

// open starts the audio device when sound is on and auto-starts the simulation
func (a *app) open() {
	if a.speaker != nil && a.cues.Enabled() {
		if err := a.speaker.Start(); err != nil {
			a.log.Warn().Err(err).Msg("audio unavailable, sound disabled")
			a.cues.SetEnabled(false)
		}
	}
	if a.cfg.LaunchOnBoot {
		a.sim.Start()
	}
}

func (a *app) close() {
	a.sim.Stop()
	if a.speaker != nil {
		_ = a.speaker.Stop()
	}
}

// toggle starts or stops the simulation without touching persisted settings
func (a *app) toggle() {
	if a.sim.Running() {
		a.sim.Stop()
		return
	}
	a.sim.Start()
}

// setCount applies and persists a new companion count
func (a *app) setCount(n int) error {
	if err := a.sim.SetAgentCount(n); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cfg.Simulation.AgentCount = n
	return a.saveLocked()
}

// setSize applies and persists a new companion size
func (a *app) setSize(px int) error {
	if err := a.sim.SetAgentSize(px); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cfg.Simulation.AgentSize = px
	return a.saveLocked()
}

// config returns a copy of the current settings
func (a *app) config() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

func (a *app) saveLocked() error {
	if a.path == "" {
		return nil
	}
	if err := config.Save(a.path, a.cfg); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// adjustCount changes the count by delta from the current setting
func (a *app) adjustCount(delta int) error {
	return a.setCount(a.config().Simulation.AgentCount + delta)
}

// adjustSize changes the size by delta from the current setting
func (a *app) adjustSize(delta int) error {
	return a.setSize(a.config().Simulation.AgentSize + delta)
}

// statusLine renders telemetry for a front end, reading atomics only
func statusLine(reg *status.Registry, help string) func() string {
	running := reg.Bools.Get(status.KeyRunning)
	companions := reg.Ints.Get(status.KeyCompanions)
	pairs := reg.Ints.Get(status.KeyActivePairs)
	jumps := reg.Ints.Get(status.KeyJumps)
	completed := reg.Ints.Get(status.KeyInteractionsCompleted)

	return func() string {
		var b strings.Builder
		if running.Load() {
			b.WriteString("running")
		} else {
			b.WriteString("stopped")
		}
		fmt.Fprintf(&b, "  companions:%d  pairs:%d  chats:%d  jumps:%d",
			companions.Load(), pairs.Load(), completed.Load(), jumps.Load())
		if help != "" {
			b.WriteString("  | ")
			b.WriteString(help)
		}
		return b.String()
	}
}

// logEvents mirrors interaction milestones at info level
func (a *app) logEvents() func() {
	return a.sim.Subscribe(func(ev event.Event) {
		p, ok := ev.Payload.(*event.PairPayload)
		if !ok {
			return
		}
		e := a.log.Info().Uint64("pair", p.PairID).Str("event", ev.Type.String())
		if ev.Type == event.EventInteractionInterrupted {
			e = e.Str("reason", p.Reason.String())
		}
		e.Msg("interaction")
	}, event.EventInteractionCompleted, event.EventInteractionInterrupted)
}
