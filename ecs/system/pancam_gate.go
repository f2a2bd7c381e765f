package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pancam/ecs"
	"github.com/milk9111/pancam/ecs/component"
)

// FocusInput is what an InputSuppressor sees each frame.
type FocusInput struct {
	HasCursor bool
	Cursor    cp.Vector
	Viewport  component.Viewport
	UIHovered bool
	Shift     bool
}

// InputSuppressor decides whether pointer input belongs to something other
// than the camera this frame.
type InputSuppressor interface {
	InputSuppressed(in FocusInput) bool
}

type SuppressorFunc func(in FocusInput) bool

func (f SuppressorFunc) InputSuppressed(in FocusInput) bool {
	return f(in)
}

// PanCamInputGateSystem evaluates the suppressor once per frame and stores
// the answer in Focus.Suppressed for the drag and zoom systems.
type PanCamInputGateSystem struct {
	suppressor InputSuppressor
}

func NewPanCamInputGateSystem(suppressor InputSuppressor) *PanCamInputGateSystem {
	return &PanCamInputGateSystem{suppressor: suppressor}
}

func (s *PanCamInputGateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.FocusComponent, func(e ecs.Entity, focus *component.Focus) {
		in := FocusInput{UIHovered: focus.UIHovered}
		if p, ok := ecs.Get(w, e, component.PointerComponent); ok {
			in.HasCursor = p.HasCursor
			in.Cursor = p.Cursor
			in.Shift = p.Shift
		}
		if vp, ok := ecs.Get(w, e, component.ViewportComponent); ok {
			in.Viewport = *vp
		}

		if s.suppressor == nil {
			focus.Suppressed = focus.UIHovered
			return
		}
		focus.Suppressed = s.suppressor.InputSuppressed(in)
	})
}
