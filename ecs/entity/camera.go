package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pancam/ecs"
	"github.com/milk9111/pancam/ecs/component"
	"github.com/milk9111/pancam/prefabs"
)

// NewCamera spawns a pan/zoom camera. The config is validated before any
// entity is created.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	cfg, err := spec.PanCamConfig()
	if err != nil {
		return 0, fmt.Errorf("camera: config: %w", err)
	}

	proj := component.NewOrthographicProjection()
	if spec.Projection.Scale > 0 {
		proj.Scale = spec.Projection.Scale
	}
	if spec.Projection.PixelsPerUnit > 0 {
		proj.PixelsPerUnit = spec.Projection.PixelsPerUnit
	}

	current := spec.State.CurrentZoom
	if current <= 0 {
		current = proj.Scale
	}
	target := spec.State.TargetZoom
	if target <= 0 {
		target = current
	}
	state := component.NewPanCamState(current, target)

	return spawn(w, "camera", func(camera ecs.Entity) error {
		if err := ecs.Add(w, camera, component.TransformComponent, &component.Transform{
			Translation: cp.Vector{X: spec.Transform.X, Y: spec.Transform.Y},
			Z:           spec.Transform.Z,
		}); err != nil {
			return fmt.Errorf("add transform: %w", err)
		}
		if err := ecs.Add(w, camera, component.OrthographicProjectionComponent, &proj); err != nil {
			return fmt.Errorf("add projection: %w", err)
		}
		if err := ecs.Add(w, camera, component.PanCamConfigComponent, &cfg); err != nil {
			return fmt.Errorf("add pancam config: %w", err)
		}
		if err := ecs.Add(w, camera, component.PanCamStateComponent, &state); err != nil {
			return fmt.Errorf("add pancam state: %w", err)
		}
		return nil
	})
}

func NewCameraFromPrefab(w *ecs.World, filename string) (ecs.Entity, error) {
	spec, err := prefabs.LoadCameraSpec(filename)
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCamera(w, spec)
}

// ApplyCameraSpec swaps the config of every live camera. The pose and
// animation state are left alone; the constraint system pulls the pose into
// the new limits on the next frame. Returns the number of cameras updated.
func ApplyCameraSpec(w *ecs.World, spec prefabs.CameraSpec) (int, error) {
	cfg, err := spec.PanCamConfig()
	if err != nil {
		return 0, fmt.Errorf("camera: config: %w", err)
	}

	n := 0
	ecs.ForEach(w, component.PanCamConfigComponent, func(_ ecs.Entity, current *component.PanCamConfig) {
		*current = cfg
		n++
	})
	return n, nil
}
