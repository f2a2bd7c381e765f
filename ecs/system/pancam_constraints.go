package system

import (
	"github.com/milk9111/pancam/ecs"
	"github.com/milk9111/pancam/ecs/component"
)

// PanCamConstraintSystem clamps every camera to its scale range and world
// bounds. It runs whether or not the camera is enabled or animating, and a
// second run in the same frame changes nothing.
type PanCamConstraintSystem struct{}

func NewPanCamConstraintSystem() *PanCamConstraintSystem {
	return &PanCamConstraintSystem{}
}

func (s *PanCamConstraintSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	vp := readInput(w).viewport
	if vp.Empty() {
		return
	}

	forEachCamera(w, func(_ ecs.Entity, cfg *component.PanCamConfig, st *component.PanCamState, proj *component.OrthographicProjection, tr *component.Transform) {
		proj.Scale = clampScale(cfg, proj, vp, proj.Scale)
		tr.Translation = clampTranslation(cfg, tr.Translation, proj.HalfExtentAt(proj.Scale, vp))
		if st.Initialized() {
			st.CurrentZoom = proj.Scale
		}
	})
}
