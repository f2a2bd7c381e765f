package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/jakecoffman/cp"
)

type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward
)

var mouseButtonNames = map[string]MouseButton{
	"left":    MouseButtonLeft,
	"right":   MouseButtonRight,
	"middle":  MouseButtonMiddle,
	"back":    MouseButtonBack,
	"forward": MouseButtonForward,
}

// ParseMouseButton maps a prefab name such as "left" to a button.
func ParseMouseButton(name string) (MouseButton, error) {
	b, ok := mouseButtonNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown mouse button %q", name)
	}
	return b, nil
}

// MouseButtons is a set of buttons.
type MouseButtons uint8

func NewMouseButtons(buttons ...MouseButton) MouseButtons {
	var m MouseButtons
	for _, b := range buttons {
		m |= 1 << b
	}
	return m
}

func (m MouseButtons) Has(b MouseButton) bool {
	return m&(1<<b) != 0
}

// Any reports whether m and other share a button.
func (m MouseButtons) Any(other MouseButtons) bool {
	return m&other != 0
}

type ScrollUnit uint8

const (
	ScrollPixel ScrollUnit = iota
	ScrollLine
)

// ScrollEvent is one wheel notch or touchpad delta. Positive Amount is
// wheel-up.
type ScrollEvent struct {
	Amount float64
	Unit   ScrollUnit
}

// Pointer is the host's view of the mouse for the current frame. Cursor is
// in window pixels with y growing downward and is meaningful only when
// HasCursor is set.
type Pointer struct {
	Cursor    cp.Vector
	HasCursor bool
	Pressed   MouseButtons
	Shift     bool
	// Scroll is drained by the zoom system once per frame.
	Scroll []ScrollEvent
}

var PointerComponent = NewComponent[Pointer]()

func (p *Pointer) SetCursor(x, y float64) {
	p.Cursor = cp.Vector{X: x, Y: y}
	p.HasCursor = true
}

func (p *Pointer) ClearCursor() {
	p.Cursor = cp.Vector{}
	p.HasCursor = false
}

func (p *Pointer) PushScroll(amount float64, unit ScrollUnit) {
	p.Scroll = append(p.Scroll, ScrollEvent{Amount: amount, Unit: unit})
}

// Viewport is the window size in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

var ViewportComponent = NewComponent[Viewport]()

// Empty reports a zero-area or otherwise unusable viewport.
func (v Viewport) Empty() bool {
	return !(v.Width > 0 && v.Height > 0) || math.IsInf(v.Width, 0) || math.IsInf(v.Height, 0)
}

func (v Viewport) Size() cp.Vector {
	return cp.Vector{X: v.Width, Y: v.Height}
}

// FrameClock carries the time elapsed since the previous frame.
type FrameClock struct {
	Delta float64
	Frame uint64
}

var FrameClockComponent = NewComponent[FrameClock]()

// Focus records whether something outside the camera, usually UI, owns the
// pointer this frame.
type Focus struct {
	UIHovered  bool
	Suppressed bool
}

var FocusComponent = NewComponent[Focus]()
