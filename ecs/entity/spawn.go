package entity

import (
	"fmt"

	"github.com/milk9111/pancam/ecs"
)

// spawn creates an entity and runs build on it. A failed build destroys the
// entity so no half-built entity stays alive.
func spawn(w *ecs.World, name string, build func(ecs.Entity) error) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := build(e); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return e, nil
}
