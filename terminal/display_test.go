package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
)

func newTestDisplay(t *testing.T) (*Display, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 25)

	d := NewDisplay(screen, DefaultConfig(), nil)
	d.HandleEvent(tcell.NewEventResize(80, 25))
	return d, screen
}

func cell(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestDisplay_BoundsExcludeStatusLine(t *testing.T) {
	d, _ := newTestDisplay(t)
	a, err := d.Bounds()
	require.NoError(t, err)
	assert.Equal(t, core.Area{Width: 800, Height: 480}, a)

	d.HandleEvent(tcell.NewEventResize(1, 1))
	_, err = d.Bounds()
	assert.Error(t, err)
}

func TestDisplay_PointerFromMouse(t *testing.T) {
	d, _ := newTestDisplay(t)
	_, err := d.Sample()
	require.ErrorIs(t, err, ErrNoPointer)

	d.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	p, err := d.Sample()
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 105, Y: 110}, p)
}

func TestDisplay_DrawsVisibleSurfaces(t *testing.T) {
	d, screen := newTestDisplay(t)

	h := d.Create(100, core.Point{X: 0, Y: 0})
	d.SetSprite(h, component.SpriteCompanionAIdle)
	d.SetFacing(h, component.FacingRight)
	d.SetVisible(h, true)

	hidden := d.Create(100, core.Point{X: 400, Y: 0})
	d.SetSprite(hidden, component.SpriteCompanionBIdle)

	d.SetStatus(func() string { return "potatoes" })
	d.Flush()

	assert.Equal(t, '█', cell(screen, 0, 0))
	assert.Equal(t, '>', cell(screen, 9, 0), "eye on the facing side")
	assert.Equal(t, '█', cell(screen, 0, 4))
	assert.Equal(t, ' ', cell(screen, 0, 5))
	assert.Equal(t, ' ', cell(screen, 40, 0), "invisible surface not drawn")
	assert.Equal(t, 'p', cell(screen, 0, 24))

	d.SetFacing(h, component.FacingLeft)
	d.SetPosition(h, 200, 40)
	d.Flush()
	assert.Equal(t, ' ', cell(screen, 0, 0))
	assert.Equal(t, '<', cell(screen, 20, 2))

	d.Destroy(h)
	d.SetPosition(h, 0, 0)
	d.SetVisible(h, true)
	d.Flush()
	assert.Equal(t, ' ', cell(screen, 20, 2), "destroyed handles ignore later calls")
}

func TestDisplay_KeyCommands(t *testing.T) {
	d, _ := newTestDisplay(t)
	var got []Command
	d.OnCommand(func(c Command) { got = append(got, c) })

	for _, r := range "s+-][qx" {
		d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	d.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	assert.Equal(t, []Command{
		CommandToggle, CommandMore, CommandFewer, CommandGrow, CommandShrink, CommandQuit, CommandQuit,
	}, got)
}

func TestDisplay_StartStop(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	d := NewDisplay(screen, DefaultConfig(), nil)

	require.NoError(t, d.Start())
	require.NoError(t, d.Start())

	screen.InjectMouse(3, 2, tcell.ButtonNone, tcell.ModNone)
	assert.Eventually(t, func() bool {
		_, err := d.Sample()
		return err == nil
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, d.Stop())
	require.NoError(t, d.Stop())
	select {
	case <-d.Done():
	default:
		t.Fatal("input loop still running")
	}
}
