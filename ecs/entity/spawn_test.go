package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/pancam/ecs"
	"github.com/milk9111/pancam/ecs/component"
)

func TestSpawnDestroysPartialEntity(t *testing.T) {
	tests := []struct {
		name    string
		build   func(w *ecs.World, e ecs.Entity) error
		wantErr error
	}{
		{
			name: "first_add_fails",
			build: func(w *ecs.World, e ecs.Entity) error {
				return ecs.Add[component.Pointer](w, e, component.PointerComponent, nil)
			},
			wantErr: component.ErrNilComponent,
		},
		{
			name: "later_add_fails",
			build: func(w *ecs.World, e ecs.Entity) error {
				if err := ecs.Add(w, e, component.PointerComponent, &component.Pointer{}); err != nil {
					return err
				}
				return ecs.Add(w, e, component.ComponentHandle[component.Viewport]{}, &component.Viewport{})
			},
			wantErr: component.ErrInvalidComponentKind,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			var built ecs.Entity
			_, err := spawn(w, "camera", func(e ecs.Entity) error {
				built = e
				return tc.build(w, e)
			})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if ecs.IsAlive(w, built) {
				t.Fatalf("expected the partial entity to be destroyed")
			}
			if _, ok := ecs.First(w, component.PointerComponent); ok {
				t.Fatalf("expected no pointer component to survive")
			}
			if n := len(ecs.Entities(w)); n != 0 {
				t.Fatalf("expected no live entities, got %d", n)
			}
		})
	}
}

func TestSpawnKeepsBuiltEntity(t *testing.T) {
	w := ecs.NewWorld()
	e, err := spawn(w, "input", func(e ecs.Entity) error {
		return ecs.Add(w, e, component.PointerComponent, &component.Pointer{})
	})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if !ecs.Has(w, e, component.PointerComponent) {
		t.Fatalf("expected the built entity to keep its components")
	}
}
