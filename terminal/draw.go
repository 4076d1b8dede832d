package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/YuliaD2609/DesktopPotato/component"
)

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	eyeStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// glyph is the fill rune and color of one sprite
type glyph struct {
	fill  rune
	style tcell.Style
}

var spriteGlyphs = map[component.SpriteKey]glyph{
	component.SpritePrimaryIdle:    {'█', tcell.StyleDefault.Foreground(tcell.ColorOlive)},
	component.SpritePrimaryRunning: {'▓', tcell.StyleDefault.Foreground(tcell.ColorYellow)},

	component.SpriteCompanionAIdle:      {'█', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	component.SpriteCompanionAWalk:      {'▒', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	component.SpriteCompanionAInteract1: {'♥', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	component.SpriteCompanionAInteract2: {'♪', tcell.StyleDefault.Foreground(tcell.ColorPurple)},

	component.SpriteCompanionBIdle:      {'█', tcell.StyleDefault.Foreground(tcell.ColorBlue)},
	component.SpriteCompanionBWalk:      {'▒', tcell.StyleDefault.Foreground(tcell.ColorBlue)},
	component.SpriteCompanionBInteract1: {'♥', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	component.SpriteCompanionBInteract2: {'♪', tcell.StyleDefault.Foreground(tcell.ColorPurple)},
}

func glyphFor(key component.SpriteKey) glyph {
	if g, ok := spriteGlyphs[key]; ok {
		return g
	}
	return glyph{fill: '?', style: tcell.StyleDefault}
}

// drawSurface fills the cells covered by s, with an eye on the facing side of the top row
// Caller holds d.mu
func (d *Display) drawSurface(s *surface) {
	g := glyphFor(s.sprite)

	col := s.x / d.cfg.CellWidth
	row := s.y / d.cfg.CellHeight
	w := max(1, s.size/d.cfg.CellWidth)
	h := max(1, s.size/d.cfg.CellHeight)
	maxRow := d.rows - 1 // Status line

	for dy := 0; dy < h; dy++ {
		y := row + dy
		if y < 0 || y >= maxRow {
			continue
		}
		for dx := 0; dx < w; dx++ {
			x := col + dx
			if x < 0 || x >= d.cols {
				continue
			}
			d.screen.SetContent(x, y, g.fill, nil, g.style)
		}
	}

	if w < 2 || row < 0 || row >= maxRow {
		return
	}
	eyeX, eye := col+w-1, '>'
	if s.facing == component.FacingLeft {
		eyeX, eye = col, '<'
	}
	if eyeX >= 0 && eyeX < d.cols {
		d.screen.SetContent(eyeX, row, eye, nil, eyeStyle)
	}
}

// drawText writes a single line, clipped to the screen width
func (d *Display) drawText(x, y int, text string, style tcell.Style) {
	if y < 0 || y >= d.rows {
		return
	}
	for _, r := range text {
		if x >= d.cols {
			return
		}
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
