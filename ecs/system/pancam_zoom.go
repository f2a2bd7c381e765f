package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pancam/ecs"
	"github.com/milk9111/pancam/ecs/component"
)

// scrollSensitivity converts one scroll pixel into a fractional scale step
// before the zoom multipliers apply.
const scrollSensitivity = 0.001

// PanCamZoomSystem turns this frame's scroll into a new zoom target, and
// kicks off the spawn animation of cameras that have not run yet.
type PanCamZoomSystem struct{}

func NewPanCamZoomSystem() *PanCamZoomSystem {
	return &PanCamZoomSystem{}
}

func (s *PanCamZoomSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	in := readInput(w)
	var pixels, lines float64
	shift := false
	var cursor *cp.Vector
	if p := in.pointer; p != nil {
		for _, ev := range p.Scroll {
			switch ev.Unit {
			case component.ScrollLine:
				lines += ev.Amount
			default:
				pixels += ev.Amount
			}
		}
		p.Scroll = p.Scroll[:0]
		shift = p.Shift
		if p.HasCursor {
			c := p.Cursor
			cursor = &c
		}
	}
	if in.suppressed {
		pixels, lines = 0, 0
	}

	vp := in.viewport
	forEachCamera(w, func(e ecs.Entity, cfg *component.PanCamConfig, st *component.PanCamState, proj *component.OrthographicProjection, tr *component.Transform) {
		if st.Phase == component.PhaseBootstrapping {
			bootstrap(w, e, cfg, st, proj, tr, vp)
			return
		}

		scroll := pixels + lines*cfg.PixelsPerLine
		if !cfg.Enabled || scroll == 0 {
			return
		}

		base := proj.Scale
		if st.Phase == component.PhaseAnimating {
			base = st.TargetZoom
		}
		multiplier := cfg.BaseZoomMultiplier * cfg.ShiftMultiplierNormal
		if shift {
			multiplier = cfg.BaseZoomMultiplier * cfg.ShiftMultiplierShifted
		}
		target := clampScale(cfg, proj, vp, base*(1-scroll*scrollSensitivity*multiplier))

		var targetTranslation *cp.Vector
		if cfg.ZoomToCursor && cursor != nil && !vp.Empty() {
			t := anchorTranslation(tr.Translation, *cursor, proj, vp, target)
			t = clampTranslation(cfg, t, proj.HalfExtentAt(target, vp))
			delta := t.Sub(tr.Translation)
			targetTranslation = &t
			st.DeltaZoomTranslation = &delta
		} else {
			st.DeltaZoomTranslation = &cp.Vector{}
		}

		wasAnimating := st.Phase == component.PhaseAnimating
		st.Retarget(target, targetTranslation)
		if !wasAnimating {
			pushCameraEvent(w, ecs.EventZoomStarted, e, proj.Scale, target)
		}
	})
}

// bootstrap syncs the projection to the spawn scale and animates toward the
// configured target, clamped so the animation can settle.
func bootstrap(w *ecs.World, e ecs.Entity, cfg *component.PanCamConfig, st *component.PanCamState, proj *component.OrthographicProjection, tr *component.Transform, vp component.Viewport) {
	if st.CurrentZoom > 0 {
		proj.Scale = st.CurrentZoom
	} else {
		st.CurrentZoom = proj.Scale
	}

	target := st.TargetZoom
	if target <= 0 {
		target = proj.Scale
	}
	target = clampScale(cfg, proj, vp, target)

	var targetTranslation *cp.Vector
	if !vp.Empty() {
		t := clampTranslation(cfg, tr.Translation, proj.HalfExtentAt(target, vp))
		targetTranslation = &t
	}
	st.Retarget(target, targetTranslation)
	pushCameraEvent(w, ecs.EventZoomStarted, e, proj.Scale, target)
}

// anchorTranslation returns the translation that keeps the world point under
// cursor fixed on screen when the scale changes to target.
func anchorTranslation(translation, cursor cp.Vector, proj *component.OrthographicProjection, vp component.Viewport, target float64) cp.Vector {
	ndc := cp.Vector{
		X: cursor.X/vp.Width*2 - 1,
		Y: 1 - cursor.Y/vp.Height*2,
	}
	half := proj.HalfExtentAt(proj.Scale, vp)
	mouseWorld := translation.Add(cp.Vector{X: ndc.X * half.X, Y: ndc.Y * half.Y})
	halfTarget := proj.HalfExtentAt(target, vp)
	return mouseWorld.Sub(cp.Vector{X: ndc.X * halfTarget.X, Y: ndc.Y * halfTarget.Y})
}
