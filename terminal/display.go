// Package terminal renders the simulation in a tcell screen
// Screen cells are mapped to virtual pixels so the core keeps working in screen coordinates
package terminal

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/logging"
	"github.com/YuliaD2609/DesktopPotato/service"
)

// ErrNoPointer is returned by Sample until the first mouse event arrives
var ErrNoPointer = errors.New("terminal: no pointer position yet")

const (
	DefaultCellWidth  = 10 // Virtual pixels per column
	DefaultCellHeight = 20 // Virtual pixels per row
)

// Config controls the cell to pixel mapping
type Config struct {
	CellWidth  int
	CellHeight int
}

// DefaultConfig returns the standard 10x20 cell mapping
func DefaultConfig() Config {
	return Config{CellWidth: DefaultCellWidth, CellHeight: DefaultCellHeight}
}

// surface is one presented agent
type surface struct {
	x, y    int
	size    int
	sprite  component.SpriteKey
	facing  component.Facing
	visible bool
}

// Display is a tcell backed presenter, cursor and work area provider
// The bottom row is reserved for the status line
type Display struct {
	screen tcell.Screen
	cfg    Config
	log    *logging.Logger

	mu       sync.Mutex
	surfaces map[service.Handle]*surface
	next     service.Handle
	pointer  core.Point
	hasPtr   bool
	cols     int
	rows     int
	status   func() string
	onCmd    func(Command)

	running bool
	done    chan struct{}
}

// NewDisplay wraps screen; the screen is initialized by Start
func NewDisplay(screen tcell.Screen, cfg Config, log *logging.Logger) *Display {
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = DefaultCellWidth
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = DefaultCellHeight
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Display{
		screen:   screen,
		cfg:      cfg,
		log:      log,
		surfaces: make(map[service.Handle]*surface),
	}
}

// OnCommand sets the key command callback, called from the input goroutine
func (d *Display) OnCommand(fn func(Command)) {
	d.mu.Lock()
	d.onCmd = fn
	d.mu.Unlock()
}

// SetStatus sets the status line source, evaluated on every flush
// fn runs inside a simulation tick and must not call back into the simulation
func (d *Display) SetStatus(fn func() string) {
	d.mu.Lock()
	d.status = fn
	d.mu.Unlock()
}

// --- Service ---

func (d *Display) Name() string {
	return "terminal"
}

// Start initializes the screen and launches input polling
func (d *Display) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return nil
	}

	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	d.screen.EnableMouse(tcell.MouseMotionEvents)
	d.screen.HideCursor()
	d.cols, d.rows = d.screen.Size()
	d.running = true
	d.done = make(chan struct{})

	done := d.done
	core.Go(func() {
		defer close(done)
		d.pollLoop()
	})
	return nil
}

// Stop restores the terminal, idempotent
func (d *Display) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return nil
	}
	d.running = false
	done := d.done
	d.mu.Unlock()

	// Fini makes PollEvent return nil, ending the loop
	d.screen.Fini()
	<-done
	return nil
}

// Done is closed when the input loop exits
func (d *Display) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}

func (d *Display) pollLoop() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		d.HandleEvent(ev)
	}
}

// HandleEvent applies one tcell event: mouse moves the pointer, resizes change the work area
func (d *Display) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		x, y := ev.Position()
		d.mu.Lock()
		d.pointer = core.Point{
			X: x*d.cfg.CellWidth + d.cfg.CellWidth/2,
			Y: y*d.cfg.CellHeight + d.cfg.CellHeight/2,
		}
		d.hasPtr = true
		d.mu.Unlock()

	case *tcell.EventResize:
		cols, rows := ev.Size()
		d.mu.Lock()
		d.cols, d.rows = cols, rows
		d.mu.Unlock()
		d.screen.Sync()

	case *tcell.EventKey:
		cmd, ok := CommandFor(ev)
		if !ok {
			return
		}
		d.mu.Lock()
		fn := d.onCmd
		d.mu.Unlock()
		if fn != nil {
			fn(cmd)
		}
	}
}

// --- Capabilities ---

// Sample returns the last mouse position in virtual pixels
func (d *Display) Sample() (core.Point, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.hasPtr {
		return core.Point{}, ErrNoPointer
	}
	return d.pointer, nil
}

// Bounds returns the drawable area above the status line in virtual pixels
func (d *Display) Bounds() (core.Area, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rows := d.rows - 1
	if d.cols <= 0 || rows <= 0 {
		return core.Area{}, fmt.Errorf("terminal too small: %dx%d", d.cols, d.rows)
	}
	return core.Area{
		Width:  d.cols * d.cfg.CellWidth,
		Height: rows * d.cfg.CellHeight,
	}, nil
}

func (d *Display) Create(size int, pos core.Point) service.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.next++
	d.surfaces[d.next] = &surface{x: pos.X, y: pos.Y, size: size}
	return d.next
}

func (d *Display) SetPosition(h service.Handle, x, y int) {
	d.with(h, func(s *surface) { s.x, s.y = x, y })
}

func (d *Display) SetSize(h service.Handle, size int) {
	d.with(h, func(s *surface) { s.size = size })
}

func (d *Display) SetSprite(h service.Handle, key component.SpriteKey) {
	d.with(h, func(s *surface) { s.sprite = key })
}

func (d *Display) SetFacing(h service.Handle, f component.Facing) {
	d.with(h, func(s *surface) { s.facing = f })
}

func (d *Display) SetVisible(h service.Handle, visible bool) {
	d.with(h, func(s *surface) { s.visible = visible })
}

func (d *Display) Destroy(h service.Handle) {
	d.mu.Lock()
	delete(d.surfaces, h)
	d.mu.Unlock()
}

// with applies fn to a live surface, unknown handles are ignored
func (d *Display) with(h service.Handle, fn func(s *surface)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s, ok := d.surfaces[h]; ok {
		fn(s)
	}
}

// Flush redraws every visible surface and the status line
func (d *Display) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	handles := make([]service.Handle, 0, len(d.surfaces))
	for h := range d.surfaces {
		handles = append(handles, h)
	}
	// Older surfaces first so newer agents draw on top
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	d.screen.Clear()
	for _, h := range handles {
		if s := d.surfaces[h]; s.visible {
			d.drawSurface(s)
		}
	}
	if d.status != nil {
		d.drawText(0, d.rows-1, d.status(), statusStyle)
	}
	d.screen.Show()
}
