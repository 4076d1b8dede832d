package engine

import (
	"github.com/YuliaD2609/DesktopPotato/component"
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/service"
)

// surface tracks the presenter handle of one agent and what it last showed
type surface struct {
	handle service.Handle
	last   component.Visual
}

// present pushes visual changes to the presenter, only changed fields are sent
func (s *Simulation) present() {
	w := s.world

	for id, sf := range s.surfaces {
		if !w.Alive(id) {
			s.presenter.Destroy(sf.handle)
			delete(s.surfaces, id)
		}
	}

	for _, a := range w.Agents() {
		v := a.Visual()
		sf, ok := s.surfaces[a.ID]
		if !ok {
			h := s.presenter.Create(v.Size, core.Point{X: v.X, Y: v.Y})
			s.presenter.SetSprite(h, v.Sprite)
			s.presenter.SetFacing(h, v.Facing)
			s.presenter.SetVisible(h, v.Visible)
			s.surfaces[a.ID] = &surface{handle: h, last: v}
			a.Resync = false
			continue
		}

		d := v.Diff(sf.last)
		if d.Size {
			s.presenter.SetSize(sf.handle, v.Size)
		}
		if d.Position || a.Resync {
			s.presenter.SetPosition(sf.handle, v.X, v.Y)
		}
		if d.Sprite {
			s.presenter.SetSprite(sf.handle, v.Sprite)
		}
		if d.Facing {
			s.presenter.SetFacing(sf.handle, v.Facing)
		}
		if d.Visible {
			s.presenter.SetVisible(sf.handle, v.Visible)
		}
		sf.last = v
		a.Resync = false
	}

	if f, ok := s.presenter.(service.Flusher); ok {
		f.Flush()
	}
}

// destroySurfaces releases every presenter handle
func (s *Simulation) destroySurfaces() {
	for id, sf := range s.surfaces {
		s.presenter.Destroy(sf.handle)
		delete(s.surfaces, id)
	}
	if f, ok := s.presenter.(service.Flusher); ok {
		f.Flush()
	}
}
