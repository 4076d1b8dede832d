package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/event"
	"github.com/YuliaD2609/DesktopPotato/logging"
	"github.com/YuliaD2609/DesktopPotato/parameter"
	"github.com/YuliaD2609/DesktopPotato/service"
	"github.com/YuliaD2609/DesktopPotato/status"
	"github.com/YuliaD2609/DesktopPotato/vmath"
)

// SimulationConfig is the population requested by the host
type SimulationConfig struct {
	AgentCount int
	AgentSize  int
}

// DefaultSimulationConfig returns four companions of 100px
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		AgentCount: parameter.DefaultAgentCount,
		AgentSize:  parameter.DefaultAgentSize,
	}
}

// Option customizes a Simulation at construction
type Option func(*Simulation)

// WithClock replaces the default 60Hz ClockScheduler
func WithClock(c Clock) Option {
	return func(s *Simulation) { s.clock = c }
}

// WithSeed makes every random decision reproducible
func WithSeed(seed uint64) Option {
	return func(s *Simulation) { s.seed = seed }
}

// WithTuning overrides behavior constants
func WithTuning(t parameter.Tuning) Option {
	return func(s *Simulation) { s.tuning = t }
}

// WithLogger attaches a logger, the default discards
func WithLogger(l *logging.Logger) Option {
	return func(s *Simulation) { s.log = l }
}

// WithStatus shares a telemetry registry with the host
func WithStatus(r *status.Registry) Option {
	return func(s *Simulation) { s.statusReg = r }
}

// WithSystems registers the behavior systems on the world
func WithSystems(install func(*World)) Option {
	return func(s *Simulation) { s.install = install }
}

// Simulation owns the world, the clock and the presentation state
// Every exported method is safe for concurrent use
type Simulation struct {
	lifeMu sync.Mutex // Serializes Start and Stop
	mu     sync.Mutex // Guards everything below

	cfg     SimulationConfig
	running bool

	world     *World
	cursor    service.CursorProvider
	workArea  service.WorkAreaProvider
	presenter service.SurfacePresenter
	surfaces  map[core.Entity]*surface

	clock     Clock
	router    *event.Router
	log       *logging.Logger
	statusReg *status.Registry

	seed    uint64
	tuning  parameter.Tuning
	install func(*World)

	// Cached metric pointers
	statRunning    *atomic.Bool
	statTicks      *atomic.Int64
	statCompanions *atomic.Int64
	statSize       *atomic.Int64
	statMisses     *atomic.Int64
	statPrimaryX   *status.AtomicFloat
	statPrimaryY   *status.AtomicFloat
}

// NewSimulation wires a stopped simulation to its host capabilities
// Invalid config values fall back to defaults
func NewSimulation(
	cfg SimulationConfig,
	cursor service.CursorProvider,
	workArea service.WorkAreaProvider,
	presenter service.SurfacePresenter,
	opts ...Option,
) *Simulation {
	if cfg.AgentCount < 0 {
		cfg.AgentCount = parameter.DefaultAgentCount
	}
	if cfg.AgentSize <= 0 {
		cfg.AgentSize = parameter.DefaultAgentSize
	}

	s := &Simulation{
		cfg:       cfg,
		cursor:    cursor,
		workArea:  workArea,
		presenter: presenter,
		surfaces:  make(map[core.Entity]*surface),
		router:    event.NewRouter(),
		tuning:    parameter.DefaultTuning(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.clock == nil {
		s.clock = NewClockScheduler(parameter.TickInterval)
	}
	if s.log == nil {
		s.log = logging.Nop()
	}
	if s.statusReg == nil {
		s.statusReg = status.NewRegistry()
	}
	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}

	s.world = NewWorld(s.tuning, vmath.NewFastRand(s.seed))
	s.world.Resources.Status = s.statusReg
	s.world.Resources.AgentSize = cfg.AgentSize

	s.statRunning = s.statusReg.Bools.Get(status.KeyRunning)
	s.statTicks = s.statusReg.Ints.Get(status.KeyTicks)
	s.statCompanions = s.statusReg.Ints.Get(status.KeyCompanions)
	s.statSize = s.statusReg.Ints.Get(status.KeyAgentSize)
	s.statMisses = s.statusReg.Ints.Get(status.KeyCursorMisses)
	s.statPrimaryX = s.statusReg.Floats.Get(status.KeyPrimaryX)
	s.statPrimaryY = s.statusReg.Floats.Get(status.KeyPrimaryY)
	s.statSize.Store(int64(cfg.AgentSize))

	s.router.Subscribe(s.logEvent,
		event.EventJumpStarted,
		event.EventFleeStarted,
		event.EventInteractionStarted,
		event.EventInteractionCompleted,
		event.EventInteractionInterrupted,
	)

	if s.install != nil {
		s.install(s.world)
	}
	return s
}

func (s *Simulation) logEvent(ev event.Event) {
	e := s.log.Debug().Str("event", ev.Type.String()).Uint64("tick", ev.Tick)
	if p, ok := ev.Payload.(*event.PairPayload); ok {
		e = e.Uint64("pair", p.PairID).Str("stage", p.Stage.String())
		if p.Reason != event.InterruptNone {
			e = e.Str("reason", p.Reason.String())
		}
	}
	e.Msg("simulation event")
}

// --- Lifecycle ---

// Start creates the population and starts the clock, no-op while running
// Subscribers run after lifeMu is released and may call Start or Stop
func (s *Simulation) Start() {
	s.lifeMu.Lock()

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.lifeMu.Unlock()
		return
	}

	w := s.world
	s.refreshWorkArea()
	w.Resources.AgentSize = s.cfg.AgentSize
	w.Resources.Cursor.Reset()

	primary := w.spawnPrimary()
	w.reconcile(s.cfg.AgentCount)
	s.running = true

	w.Emit(event.EventSimulationStarted, &event.StartedPayload{
		Primary:    primary.ID,
		Companions: w.CompanionCount(),
	})
	s.present()
	s.updateStatus()
	events := w.Resources.Events.Consume()
	s.mu.Unlock()

	s.clock.Start(s.Tick)
	s.lifeMu.Unlock()

	s.log.Info().
		Int("companions", s.cfg.AgentCount).
		Int("size", s.cfg.AgentSize).
		Msg("simulation started")
	s.router.Dispatch(events)
}

// Stop destroys every agent and surface and stops the clock, no-op while stopped
// Safe to call from a subscriber, including one dispatched by a tick
func (s *Simulation) Stop() {
	s.lifeMu.Lock()

	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		s.lifeMu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	// Outside mu so an in-flight tick can finish
	s.clock.Stop()

	s.mu.Lock()
	w := s.world
	w.clear()
	w.Emit(event.EventSimulationStopped, nil)
	w.Resources.Cursor.Reset()
	s.updateStatus()
	s.destroySurfaces()
	events := w.Resources.Events.Consume()
	s.mu.Unlock()
	s.lifeMu.Unlock()

	s.log.Info().Msg("simulation stopped")
	s.router.Dispatch(events)
}

// Running reports whether the simulation is started
func (s *Simulation) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// --- Commands ---

// SetAgentCount sets the companion target, converging the live population immediately when running
func (s *Simulation) SetAgentCount(n int) error {
	if n < 0 {
		s.log.Warn().Int("count", n).Msg("rejected agent count")
		return ErrInvalidAgentCount
	}

	s.mu.Lock()
	s.cfg.AgentCount = n
	if !s.running {
		s.mu.Unlock()
		return nil
	}

	w := s.world
	s.refreshWorkArea()
	added, removed := w.reconcile(n)
	s.present()
	s.updateStatus()
	events := w.Resources.Events.Consume()
	s.mu.Unlock()

	s.log.Info().Int("count", n).Int("added", added).Int("removed", removed).Msg("population changed")
	s.router.Dispatch(events)
	return nil
}

// SetAgentSize resizes every companion, keeping X unless the new size breaks the bound
func (s *Simulation) SetAgentSize(px int) error {
	if px <= 0 {
		s.log.Warn().Int("size", px).Msg("rejected agent size")
		return ErrInvalidAgentSize
	}

	s.mu.Lock()
	s.cfg.AgentSize = px
	s.statSize.Store(int64(px))
	if !s.running {
		s.mu.Unlock()
		return nil
	}

	w := s.world
	w.Resources.AgentSize = px
	s.refreshWorkArea()
	w.SettlePoses()
	w.Emit(event.EventAgentSizeChanged, &event.SizePayload{Size: px})
	s.present()
	events := w.Resources.Events.Consume()
	s.mu.Unlock()

	s.log.Info().Int("size", px).Msg("agent size changed")
	s.router.Dispatch(events)
	return nil
}

// Config returns the current population target
func (s *Simulation) Config() SimulationConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// --- Tick ---

// Tick advances the simulation by one fixed step, no-op while stopped
func (s *Simulation) Tick() {
	events := s.step()
	s.router.Dispatch(events)
}

func (s *Simulation) step() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	w := s.world
	w.Resources.Tick++

	p, err := s.cursor.Sample()
	if err != nil {
		w.Resources.Cursor.Miss()
		s.statMisses.Add(1)
	} else {
		w.Resources.Cursor.Update(p)
	}

	w.Update()
	w.SettlePoses()
	s.present()
	s.updateStatus()

	return w.Resources.Events.Consume()
}

// refreshWorkArea re-reads the bounds, keeping the last good value on failure
func (s *Simulation) refreshWorkArea() {
	a, err := s.workArea.Bounds()
	if err != nil || a.Empty() {
		s.log.Debug().Err(err).Msg("work area unavailable, keeping last bounds")
		return
	}
	s.world.Resources.WorkArea = a
}

func (s *Simulation) updateStatus() {
	w := s.world
	s.statRunning.Store(s.running)
	s.statTicks.Store(int64(w.Resources.Tick))
	s.statCompanions.Store(int64(w.CompanionCount()))
	if p := w.Primary(); p != nil {
		s.statPrimaryX.Set(p.X)
		s.statPrimaryY.Set(p.Y)
	}
}

// --- Observation ---

// Subscribe registers h for simulation events, all types when none are given
// Handlers run outside the simulation lock and may call back into it
func (s *Simulation) Subscribe(h event.Handler, types ...event.EventType) func() {
	return s.router.Subscribe(h, types...)
}

// Status returns the telemetry registry
func (s *Simulation) Status() *status.Registry {
	return s.statusReg
}

// Do runs fn against the world under the simulation lock, then presents and dispatches
func (s *Simulation) Do(fn func(w *World)) {
	s.mu.Lock()
	fn(s.world)
	if s.running {
		s.present()
	}
	events := s.world.Resources.Events.Consume()
	s.mu.Unlock()
	s.router.Dispatch(events)
}

// AgentView is a read-only copy of one agent
type AgentView struct {
	ID       core.Entity
	Kind     component.Kind
	X, Y     float64
	Size     int
	Facing   component.Facing
	State    component.CompanionState
	Stage    component.InteractionStage
	Partner  core.Entity
	Steering component.SteeringState
	Jump     component.JumpState
	JumpLift float64
	Visible  bool
	Sprite   component.SpriteKey
}

// Snapshot is a consistent copy of the simulation state
type Snapshot struct {
	Running    bool
	Tick       uint64
	AgentCount int
	AgentSize  int
	WorkArea   core.Area
	Agents     []AgentView
}

// Primary returns the primary agent view
func (s Snapshot) Primary() (AgentView, bool) {
	for _, a := range s.Agents {
		if a.Kind == component.KindPrimary {
			return a, true
		}
	}
	return AgentView{}, false
}

// Companions returns companion views in creation order
func (s Snapshot) Companions() []AgentView {
	var out []AgentView
	for _, a := range s.Agents {
		if a.Kind.IsCompanion() {
			out = append(out, a)
		}
	}
	return out
}

// Agent returns the view for id
func (s Snapshot) Agent(id core.Entity) (AgentView, bool) {
	for _, a := range s.Agents {
		if a.ID == id {
			return a, true
		}
	}
	return AgentView{}, false
}

// Snapshot copies the current state
func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.world
	snap := Snapshot{
		Running:    s.running,
		Tick:       w.Resources.Tick,
		AgentCount: s.cfg.AgentCount,
		AgentSize:  s.cfg.AgentSize,
		WorkArea:   w.Resources.WorkArea,
	}
	for _, a := range w.Agents() {
		snap.Agents = append(snap.Agents, AgentView{
			ID:       a.ID,
			Kind:     a.Kind,
			X:        a.X,
			Y:        a.Y,
			Size:     a.Size,
			Facing:   a.Facing,
			State:    a.State,
			Stage:    a.Stage,
			Partner:  a.Partner(),
			Steering: a.Steering,
			Jump:     a.Jump,
			JumpLift: a.JumpLift,
			Visible:  a.Visible,
			Sprite:   component.SpriteFor(a),
		})
	}
	return snap
}
