package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pancam/ecs"
	"github.com/milk9111/pancam/ecs/component"
)

// defaultFrameDelta is used when the world has no frame clock.
const defaultFrameDelta = 1.0 / 60.0

// NewPanCamSystems returns the pan/zoom pipeline in the order it must run
// each frame. A nil suppressor falls back to Focus.UIHovered.
func NewPanCamSystems(suppressor InputSuppressor) []ecs.System {
	return []ecs.System{
		NewPanCamInputGateSystem(suppressor),
		NewPanCamDragSystem(),
		NewPanCamZoomSystem(),
		NewPanCamInterpolateSystem(),
		NewPanCamConstraintSystem(),
	}
}

// frameInput is the host-written input singleton flattened for one frame.
type frameInput struct {
	pointer    *component.Pointer
	viewport   component.Viewport
	delta      float64
	suppressed bool
}

// readInput collects the input singleton. Missing components read as an
// absent cursor, an empty viewport and the default frame delta.
func readInput(w *ecs.World) frameInput {
	in := frameInput{delta: defaultFrameDelta}
	if e, ok := ecs.First(w, component.PointerComponent); ok {
		in.pointer, _ = ecs.Get(w, e, component.PointerComponent)
	}
	if e, ok := ecs.First(w, component.ViewportComponent); ok {
		if vp, ok := ecs.Get(w, e, component.ViewportComponent); ok {
			in.viewport = *vp
		}
	}
	if e, ok := ecs.First(w, component.FrameClockComponent); ok {
		if clock, ok := ecs.Get(w, e, component.FrameClockComponent); ok && clock.Delta >= 0 {
			in.delta = clock.Delta
		}
	}
	if e, ok := ecs.First(w, component.FocusComponent); ok {
		if focus, ok := ecs.Get(w, e, component.FocusComponent); ok {
			in.suppressed = focus.Suppressed
		}
	}
	return in
}

// forEachCamera visits every entity carrying the full pan/zoom component set.
func forEachCamera(w *ecs.World, fn func(ecs.Entity, *component.PanCamConfig, *component.PanCamState, *component.OrthographicProjection, *component.Transform)) {
	ecs.ForEach4(w,
		component.PanCamConfigComponent,
		component.PanCamStateComponent,
		component.OrthographicProjectionComponent,
		component.TransformComponent,
		fn,
	)
}

// MaxScaleWithinBounds returns, per axis, the largest scale at which the
// visible world still fits inside boundsSize.
func MaxScaleWithinBounds(boundsSize cp.Vector, proj *component.OrthographicProjection, vp component.Viewport) cp.Vector {
	unit := proj.SizeAt(1, vp)
	return cp.Vector{X: boundsSize.X / unit.X, Y: boundsSize.Y / unit.Y}
}

// effectiveMaxScale combines MaxScale with the limits implied by any axis
// that has both bounds set.
func effectiveMaxScale(cfg *component.PanCamConfig, proj *component.OrthographicProjection, vp component.Viewport) float64 {
	limit := math.Inf(1)
	if cfg.MaxScale != nil {
		limit = *cfg.MaxScale
	}
	if vp.Empty() {
		return limit
	}

	bounds := cfg.Bounds()
	safe := MaxScaleWithinBounds(cp.Vector{X: bounds.R - bounds.L, Y: bounds.T - bounds.B}, proj, vp)
	xBounded, yBounded := cfg.ScaleConstrained()
	if xBounded {
		limit = min(limit, safe.X)
	}
	if yBounded {
		limit = min(limit, safe.Y)
	}
	return limit
}

// clampScale applies MinScale first and the effective max last, so bounds
// win when the two disagree.
func clampScale(cfg *component.PanCamConfig, proj *component.OrthographicProjection, vp component.Viewport, scale float64) float64 {
	scale = max(scale, cfg.MinScale)
	return min(scale, effectiveMaxScale(cfg, proj, vp))
}

// clampTranslation keeps every configured viewport edge inside its bound.
func clampTranslation(cfg *component.PanCamConfig, translation, halfExtent cp.Vector) cp.Vector {
	if cfg.MinX != nil {
		translation.X = max(translation.X, *cfg.MinX+halfExtent.X)
	}
	if cfg.MaxX != nil {
		translation.X = min(translation.X, *cfg.MaxX-halfExtent.X)
	}
	if cfg.MinY != nil {
		translation.Y = max(translation.Y, *cfg.MinY+halfExtent.Y)
	}
	if cfg.MaxY != nil {
		translation.Y = min(translation.Y, *cfg.MaxY-halfExtent.Y)
	}
	return translation
}

func pushCameraEvent(w *ecs.World, kind string, e ecs.Entity, scale, target float64) {
	w.Events().Push(ecs.Event{Type: kind, Data: ecs.CameraEvent{Entity: e, Scale: scale, Target: target}})
}
