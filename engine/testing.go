package engine

import (
	"sync"

	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/service"
)

// Test doubles for the host capabilities, shared by package tests across the module

// FakeCursor is a settable CursorProvider
type FakeCursor struct {
	mu   sync.Mutex
	p    core.Point
	fail bool
}

// NewFakeCursor creates a cursor parked at (x, y)
func NewFakeCursor(x, y int) *FakeCursor {
	return &FakeCursor{p: core.Point{X: x, Y: y}}
}

func (c *FakeCursor) Sample() (core.Point, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return core.Point{}, ErrNoCursor
	}
	return c.p, nil
}

// Move parks the cursor at (x, y)
func (c *FakeCursor) Move(x, y int) {
	c.mu.Lock()
	c.p = core.Point{X: x, Y: y}
	c.mu.Unlock()
}

// Fail makes subsequent samples error until cleared
func (c *FakeCursor) Fail(fail bool) {
	c.mu.Lock()
	c.fail = fail
	c.mu.Unlock()
}

// FakeWorkArea is a settable WorkAreaProvider
type FakeWorkArea struct {
	mu   sync.Mutex
	a    core.Area
	fail bool
}

// NewFakeWorkArea creates a provider reporting a
func NewFakeWorkArea(a core.Area) *FakeWorkArea {
	return &FakeWorkArea{a: a}
}

func (w *FakeWorkArea) Bounds() (core.Area, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail {
		return core.Area{}, ErrNoWorkArea
	}
	return w.a, nil
}

// Set replaces the reported area
func (w *FakeWorkArea) Set(a core.Area) {
	w.mu.Lock()
	w.a = a
	w.mu.Unlock()
}

// Fail makes subsequent reads error until cleared
func (w *FakeWorkArea) Fail(fail bool) {
	w.mu.Lock()
	w.fail = fail
	w.mu.Unlock()
}

// Command is one recorded presenter call
type Command struct {
	Op      string
	Handle  service.Handle
	X, Y    int
	Size    int
	Sprite  component.SpriteKey
	Facing  component.Facing
	Visible bool
}

// RecordingPresenter records every accepted call and mirrors surface state
// Calls on destroyed or unknown handles are counted and otherwise ignored
type RecordingPresenter struct {
	mu       sync.Mutex
	next     service.Handle
	live     map[service.Handle]*component.Visual
	commands []Command
	stale    int
	flushes  int
}

// NewRecordingPresenter creates an empty presenter
func NewRecordingPresenter() *RecordingPresenter {
	return &RecordingPresenter{live: make(map[service.Handle]*component.Visual)}
}

func (p *RecordingPresenter) Create(size int, pos core.Point) service.Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.next++
	h := p.next
	p.live[h] = &component.Visual{X: pos.X, Y: pos.Y, Size: size}
	p.commands = append(p.commands, Command{Op: "create", Handle: h, X: pos.X, Y: pos.Y, Size: size})
	return h
}

func (p *RecordingPresenter) SetPosition(h service.Handle, x, y int) {
	p.apply(Command{Op: "position", Handle: h, X: x, Y: y}, func(v *component.Visual) { v.X, v.Y = x, y })
}

func (p *RecordingPresenter) SetSize(h service.Handle, size int) {
	p.apply(Command{Op: "size", Handle: h, Size: size}, func(v *component.Visual) { v.Size = size })
}

func (p *RecordingPresenter) SetSprite(h service.Handle, key component.SpriteKey) {
	p.apply(Command{Op: "sprite", Handle: h, Sprite: key}, func(v *component.Visual) { v.Sprite = key })
}

func (p *RecordingPresenter) SetFacing(h service.Handle, f component.Facing) {
	p.apply(Command{Op: "facing", Handle: h, Facing: f}, func(v *component.Visual) { v.Facing = f })
}

func (p *RecordingPresenter) SetVisible(h service.Handle, visible bool) {
	p.apply(Command{Op: "visible", Handle: h, Visible: visible}, func(v *component.Visual) { v.Visible = visible })
}

func (p *RecordingPresenter) Destroy(h service.Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.live[h]; !ok {
		p.stale++
		return
	}
	delete(p.live, h)
	p.commands = append(p.commands, Command{Op: "destroy", Handle: h})
}

func (p *RecordingPresenter) Flush() {
	p.mu.Lock()
	p.flushes++
	p.mu.Unlock()
}

func (p *RecordingPresenter) apply(cmd Command, fn func(v *component.Visual)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.live[cmd.Handle]
	if !ok {
		p.stale++
		return
	}
	fn(v)
	p.commands = append(p.commands, cmd)
}

// Commands returns a copy of the accepted calls
func (p *RecordingPresenter) Commands() []Command {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Command, len(p.commands))
	copy(out, p.commands)
	return out
}

// CountOp returns how many accepted calls had the given op
func (p *RecordingPresenter) CountOp(op string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls, surfaces stay live
func (p *RecordingPresenter) Reset() {
	p.mu.Lock()
	p.commands = nil
	p.mu.Unlock()
}

// Live returns the number of surfaces not yet destroyed
func (p *RecordingPresenter) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}

// Surface returns the mirrored state of a live handle
func (p *RecordingPresenter) Surface(h service.Handle) (component.Visual, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.live[h]
	if !ok {
		return component.Visual{}, false
	}
	return *v, true
}

// Stale returns the number of calls made on dead handles
func (p *RecordingPresenter) Stale() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stale
}

// Flushes returns the number of Flush calls
func (p *RecordingPresenter) Flushes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flushes
}
