package entity

import (
	"fmt"

	"github.com/milk9111/pancam/ecs"
	"github.com/milk9111/pancam/ecs/component"
)

// NewInput spawns the input singleton the host writes each frame.
func NewInput(w *ecs.World, width, height float64) (ecs.Entity, error) {
	if _, ok := ecs.First(w, component.PointerComponent); ok {
		return 0, fmt.Errorf("input: singleton already exists")
	}

	return spawn(w, "input", func(input ecs.Entity) error {
		if err := ecs.Add(w, input, component.PointerComponent, &component.Pointer{}); err != nil {
			return fmt.Errorf("add pointer: %w", err)
		}
		if err := ecs.Add(w, input, component.ViewportComponent, &component.Viewport{Width: width, Height: height}); err != nil {
			return fmt.Errorf("add viewport: %w", err)
		}
		if err := ecs.Add(w, input, component.FrameClockComponent, &component.FrameClock{}); err != nil {
			return fmt.Errorf("add frame clock: %w", err)
		}
		if err := ecs.Add(w, input, component.FocusComponent, &component.Focus{}); err != nil {
			return fmt.Errorf("add focus: %w", err)
		}
		return nil
	})
}
