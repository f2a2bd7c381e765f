package system

import (
	"github.com/milk9111/pancam/ecs"
	"github.com/milk9111/pancam/ecs/component"
)

// PanCamInterpolateSystem eases animating cameras toward their targets with
// first-order exponential decay.
type PanCamInterpolateSystem struct{}

func NewPanCamInterpolateSystem() *PanCamInterpolateSystem {
	return &PanCamInterpolateSystem{}
}

func (s *PanCamInterpolateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	in := readInput(w)
	vp := in.viewport
	forEachCamera(w, func(e ecs.Entity, cfg *component.PanCamConfig, st *component.PanCamState, proj *component.OrthographicProjection, tr *component.Transform) {
		if st.Phase != component.PhaseAnimating {
			return
		}

		// Limits may have moved since the target was set (resize, reload).
		st.TargetZoom = clampScale(cfg, proj, vp, st.TargetZoom)
		if st.TargetTranslation != nil && !vp.Empty() {
			t := clampTranslation(cfg, *st.TargetTranslation, proj.HalfExtentAt(st.TargetZoom, vp))
			st.TargetTranslation = &t
		}

		f := cfg.AnimationScale * in.delta
		proj.Scale = approach(proj.Scale, st.TargetZoom, f)
		if st.TargetTranslation != nil {
			tr.Translation.X = approach(tr.Translation.X, st.TargetTranslation.X, f)
			tr.Translation.Y = approach(tr.Translation.Y, st.TargetTranslation.Y, f)
		}
		st.CurrentZoom = proj.Scale

		if !converged(cfg, st, proj, tr) {
			return
		}
		proj.Scale = st.TargetZoom
		st.CurrentZoom = st.TargetZoom
		if st.TargetTranslation != nil {
			tr.Translation = *st.TargetTranslation
		}
		st.TargetTranslation = nil
		st.Settle()
		pushCameraEvent(w, ecs.EventZoomSettled, e, proj.Scale, st.TargetZoom)
	})
}

// approach moves current a fraction f of the way to target and snaps to
// target instead of overshooting. A step too small to change current also
// snaps, otherwise the remaining ulps would never close.
func approach(current, target, f float64) float64 {
	diff := target - current
	next := current + diff*f
	if (f > 0 && next == current) || (target-next)*diff <= 0 {
		return target
	}
	return next
}

func converged(cfg *component.PanCamConfig, st *component.PanCamState, proj *component.OrthographicProjection, tr *component.Transform) bool {
	diff := st.TargetZoom - proj.Scale
	if diff < 0 {
		diff = -diff
	}
	if diff > cfg.ZoomEpsilon*st.TargetZoom {
		return false
	}
	if st.TargetTranslation == nil {
		return true
	}
	ppu := proj.PixelsPerUnit
	if ppu <= 0 {
		ppu = 1
	}
	tolerance := cfg.TranslationEpsilon * proj.Scale / ppu
	return st.TargetTranslation.Sub(tr.Translation).Length() <= tolerance
}
