package component

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

var ErrInvalidPanCamConfig = errors.New("pancam: invalid config")

// PanCamConfig is the user-facing configuration of a pan/zoom camera. It is
// set when the camera is spawned and only replaced wholesale (hot reload).
type PanCamConfig struct {
	// GrabButtons enable dragging while any of them is held.
	GrabButtons MouseButtons
	// Enabled gates drag and scroll-zoom. Bounds are enforced regardless.
	Enabled bool
	// ZoomToCursor anchors zoom on the world point under the cursor instead
	// of the viewport centre.
	ZoomToCursor bool

	// MinScale is the zoom-in floor. Must be > 0.
	MinScale float64
	// MaxScale is an optional zoom-out ceiling, independent of bounds.
	MaxScale *float64

	// World-space bounds the visible viewport must stay within. Each is
	// enforced only when set.
	MinX *float64
	MaxX *float64
	MinY *float64
	MaxY *float64

	// PixelsPerLine converts line-unit scroll events to pixel units.
	PixelsPerLine float64

	BaseZoomMultiplier     float64
	ShiftMultiplierNormal  float64
	ShiftMultiplierShifted float64
	// AnimationScale is the exponential approach rate per second. Higher is
	// snappier.
	AnimationScale float64

	// ZoomEpsilon is the convergence tolerance on scale, relative to the
	// target scale.
	ZoomEpsilon float64
	// TranslationEpsilon is the convergence tolerance on translation, in
	// screen pixels at the current scale.
	TranslationEpsilon float64
}

var PanCamConfigComponent = NewComponent[PanCamConfig]()

const (
	DefaultMinScale               = 0.00001
	DefaultPixelsPerLine          = 100.0
	DefaultBaseZoomMultiplier     = 10.0
	DefaultShiftMultiplierNormal  = 10.0
	DefaultShiftMultiplierShifted = 30.0
	DefaultAnimationScale         = 3.0
	DefaultZoomEpsilon            = 0.001
	DefaultTranslationEpsilon     = 0.5
)

// DefaultPanCamConfig returns an enabled, unbounded, cursor-anchored config.
func DefaultPanCamConfig() PanCamConfig {
	return PanCamConfig{
		GrabButtons:            NewMouseButtons(MouseButtonLeft, MouseButtonRight, MouseButtonMiddle),
		Enabled:                true,
		ZoomToCursor:           true,
		MinScale:               DefaultMinScale,
		PixelsPerLine:          DefaultPixelsPerLine,
		BaseZoomMultiplier:     DefaultBaseZoomMultiplier,
		ShiftMultiplierNormal:  DefaultShiftMultiplierNormal,
		ShiftMultiplierShifted: DefaultShiftMultiplierShifted,
		AnimationScale:         DefaultAnimationScale,
		ZoomEpsilon:            DefaultZoomEpsilon,
		TranslationEpsilon:     DefaultTranslationEpsilon,
	}
}

// Validate rejects configurations the per-frame clamps cannot honour.
func (c *PanCamConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidPanCamConfig)
	}
	finite := []struct {
		name string
		v    *float64
	}{
		{"min_scale", &c.MinScale},
		{"max_scale", c.MaxScale},
		{"min_x", c.MinX},
		{"max_x", c.MaxX},
		{"min_y", c.MinY},
		{"max_y", c.MaxY},
		{"pixels_per_line", &c.PixelsPerLine},
		{"base_zoom_multiplier", &c.BaseZoomMultiplier},
		{"shift_multiplier_normal", &c.ShiftMultiplierNormal},
		{"shift_multiplier_shifted", &c.ShiftMultiplierShifted},
		{"animation_scale", &c.AnimationScale},
		{"zoom_epsilon", &c.ZoomEpsilon},
		{"translation_epsilon", &c.TranslationEpsilon},
	}
	for _, f := range finite {
		if f.v != nil && (math.IsNaN(*f.v) || math.IsInf(*f.v, 0)) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidPanCamConfig, f.name, *f.v)
		}
	}

	switch {
	case c.MinScale <= 0:
		return fmt.Errorf("%w: min_scale must be > 0, got %v", ErrInvalidPanCamConfig, c.MinScale)
	case c.MaxScale != nil && *c.MaxScale < c.MinScale:
		return fmt.Errorf("%w: max_scale %v is below min_scale %v", ErrInvalidPanCamConfig, *c.MaxScale, c.MinScale)
	case c.MinX != nil && c.MaxX != nil && *c.MinX > *c.MaxX:
		return fmt.Errorf("%w: min_x %v is greater than max_x %v", ErrInvalidPanCamConfig, *c.MinX, *c.MaxX)
	case c.MinY != nil && c.MaxY != nil && *c.MinY > *c.MaxY:
		return fmt.Errorf("%w: min_y %v is greater than max_y %v", ErrInvalidPanCamConfig, *c.MinY, *c.MaxY)
	case c.PixelsPerLine < 0:
		return fmt.Errorf("%w: pixels_per_line must be >= 0, got %v", ErrInvalidPanCamConfig, c.PixelsPerLine)
	case c.BaseZoomMultiplier <= 0 || c.ShiftMultiplierNormal <= 0 || c.ShiftMultiplierShifted <= 0:
		return fmt.Errorf("%w: zoom multipliers must be > 0", ErrInvalidPanCamConfig)
	case c.AnimationScale <= 0:
		return fmt.Errorf("%w: animation_scale must be > 0, got %v", ErrInvalidPanCamConfig, c.AnimationScale)
	case c.ZoomEpsilon <= 0 || c.TranslationEpsilon <= 0:
		return fmt.Errorf("%w: epsilons must be > 0", ErrInvalidPanCamConfig)
	}
	return nil
}

// Bounds returns the configured world bounds with unset sides at infinity.
func (c *PanCamConfig) Bounds() cp.BB {
	return cp.BB{
		L: valueOr(c.MinX, math.Inf(-1)),
		B: valueOr(c.MinY, math.Inf(-1)),
		R: valueOr(c.MaxX, math.Inf(1)),
		T: valueOr(c.MaxY, math.Inf(1)),
	}
}

// ScaleConstrained reports, per axis, whether both bounds are set and so
// limit how far the camera may zoom out.
func (c *PanCamConfig) ScaleConstrained() (x, y bool) {
	return c.MinX != nil && c.MaxX != nil, c.MinY != nil && c.MaxY != nil
}

// Float64Ptr is a convenience for filling the optional config fields.
func Float64Ptr(v float64) *float64 {
	return &v
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// Phase is the animation state of a pan/zoom camera.
type Phase uint8

const (
	// PhaseBootstrapping is the zero value: the camera has not run its first
	// zoom step yet.
	PhaseBootstrapping Phase = iota
	PhaseAtRest
	PhaseAnimating
)

func (p Phase) String() string {
	switch p {
	case PhaseBootstrapping:
		return "bootstrapping"
	case PhaseAtRest:
		return "at_rest"
	case PhaseAnimating:
		return "animating"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// PanCamState is mutated every frame by the pan/zoom systems.
type PanCamState struct {
	// CurrentZoom mirrors the projection scale. Before the first frame it
	// holds the spawn scale.
	CurrentZoom float64
	// TargetZoom is the scale the interpolator drives toward.
	TargetZoom float64
	Phase      Phase
	// TargetTranslation is nil when there is no translation animation.
	TargetTranslation *cp.Vector
	// DeltaZoomTranslation is the translation correction implied by the
	// last zoom step. Diagnostic only.
	DeltaZoomTranslation *cp.Vector
}

var PanCamStateComponent = NewComponent[PanCamState]()

// NewPanCamState returns a state that animates from current to target on
// its first frame.
func NewPanCamState(current, target float64) PanCamState {
	return PanCamState{CurrentZoom: current, TargetZoom: target, Phase: PhaseBootstrapping}
}

// IsZooming reports whether an animated transition is pending or in flight.
func (s *PanCamState) IsZooming() bool {
	return s.Phase != PhaseAtRest
}

func (s *PanCamState) Initialized() bool {
	return s.Phase != PhaseBootstrapping
}

// Retarget records a fresh zoom intent and starts (or continues) animating.
func (s *PanCamState) Retarget(zoom float64, translation *cp.Vector) {
	s.TargetZoom = zoom
	s.TargetTranslation = translation
	s.Phase = PhaseAnimating
}

// Settle ends the animation. The caller has already snapped the pose.
func (s *PanCamState) Settle() {
	s.Phase = PhaseAtRest
}
