// Package input feeds ebiten's mouse and keyboard state into the pan/zoom
// input singleton.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pancam/ecs"
	"github.com/milk9111/pancam/ecs/component"
)

var buttonMap = []struct {
	ebiten ebiten.MouseButton
	pancam component.MouseButton
}{
	{ebiten.MouseButtonLeft, component.MouseButtonLeft},
	{ebiten.MouseButtonRight, component.MouseButtonRight},
	{ebiten.MouseButtonMiddle, component.MouseButtonMiddle},
	{ebiten.MouseButton3, component.MouseButtonBack},
	{ebiten.MouseButton4, component.MouseButtonForward},
}

// Source is an ecs.System that must run before the pan/zoom pipeline.
type Source struct{}

func NewSource() *Source {
	return &Source{}
}

func (s *Source) Update(w *ecs.World) {
	if w == nil {
		return
	}

	_, wheelY := ebiten.Wheel()
	x, y := ebiten.CursorPosition()
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	focused := ebiten.IsFocused()

	var pressed []component.MouseButton
	for _, b := range buttonMap {
		if ebiten.IsMouseButtonPressed(b.ebiten) {
			pressed = append(pressed, b.pancam)
		}
	}

	delta := 1.0 / float64(ebiten.TPS())

	ecs.ForEach(w, component.PointerComponent, func(e ecs.Entity, p *component.Pointer) {
		vp, ok := ecs.Get(w, e, component.ViewportComponent)
		inside := ok && x >= 0 && y >= 0 && float64(x) < vp.Width && float64(y) < vp.Height
		if focused && inside {
			p.SetCursor(float64(x), float64(y))
		} else {
			p.ClearCursor()
		}

		p.Pressed = component.NewMouseButtons(pressed...)
		p.Shift = shift
		if wheelY != 0 && focused {
			// ebiten reports wheel notches; touchpads report fractions of one.
			p.PushScroll(wheelY, component.ScrollLine)
		}

		if clock, ok := ecs.Get(w, e, component.FrameClockComponent); ok {
			clock.Delta = delta
			clock.Frame++
		}
	})
}
