package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pancam/ecs"
	"github.com/milk9111/pancam/ecs/component"
)

// PanCamDragSystem pans cameras while a grab button is held. The previous
// cursor position lives here, not on the camera, so every camera sees the
// same delta.
type PanCamDragSystem struct {
	last    cp.Vector
	hasLast bool
}

func NewPanCamDragSystem() *PanCamDragSystem {
	return &PanCamDragSystem{}
}

func (s *PanCamDragSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	in := readInput(w)
	if in.pointer == nil || !in.pointer.HasCursor {
		s.hasLast = false
		return
	}

	current := in.pointer.Cursor
	previous := current
	if s.hasLast {
		previous = s.last
	}
	s.last, s.hasLast = current, true

	// Screen y grows downward, world y upward.
	delta := cp.Vector{X: current.X - previous.X, Y: previous.Y - current.Y}
	if delta.X == 0 && delta.Y == 0 {
		return
	}
	if in.suppressed || in.viewport.Empty() {
		return
	}

	vp := in.viewport
	pressed := in.pointer.Pressed
	forEachCamera(w, func(_ ecs.Entity, cfg *component.PanCamConfig, st *component.PanCamState, proj *component.OrthographicProjection, tr *component.Transform) {
		if !cfg.Enabled || !cfg.GrabButtons.Any(pressed) || st.IsZooming() {
			return
		}
		size := proj.Size(vp)
		world := cp.Vector{X: delta.X * size.X / vp.Width, Y: delta.Y * size.Y / vp.Height}
		tr.Translation = tr.Translation.Sub(world)
	})
}
