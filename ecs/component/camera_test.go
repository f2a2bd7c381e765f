package component

import (
	"errors"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestDefaultPanCamConfigIsValid(t *testing.T) {
	cfg := DefaultPanCamConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
	for _, b := range []MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle} {
		if !cfg.GrabButtons.Has(b) {
			t.Fatalf("default grab buttons should include %d", b)
		}
	}
	if !cfg.Enabled || !cfg.ZoomToCursor {
		t.Fatalf("default config should be enabled and zoom to cursor")
	}
}

func TestPanCamConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PanCamConfig)
		wantErr bool
	}{
		{"default", func(c *PanCamConfig) {}, false},
		{"bounded", func(c *PanCamConfig) {
			c.MinX, c.MaxX = Float64Ptr(-500), Float64Ptr(500)
			c.MaxScale = Float64Ptr(4)
		}, false},
		{"max_equals_min", func(c *PanCamConfig) { c.MaxScale = Float64Ptr(c.MinScale) }, false},
		{"zero_min_scale", func(c *PanCamConfig) { c.MinScale = 0 }, true},
		{"negative_min_scale", func(c *PanCamConfig) { c.MinScale = -1 }, true},
		{"nan_min_scale", func(c *PanCamConfig) { c.MinScale = math.NaN() }, true},
		{"max_below_min", func(c *PanCamConfig) {
			c.MinScale = 1
			c.MaxScale = Float64Ptr(0.5)
		}, true},
		{"inverted_x", func(c *PanCamConfig) { c.MinX, c.MaxX = Float64Ptr(10), Float64Ptr(-10) }, true},
		{"inverted_y", func(c *PanCamConfig) { c.MinY, c.MaxY = Float64Ptr(1), Float64Ptr(0) }, true},
		{"infinite_bound", func(c *PanCamConfig) { c.MaxY = Float64Ptr(math.Inf(1)) }, true},
		{"zero_animation_scale", func(c *PanCamConfig) { c.AnimationScale = 0 }, true},
		{"negative_pixels_per_line", func(c *PanCamConfig) { c.PixelsPerLine = -1 }, true},
		{"zero_multiplier", func(c *PanCamConfig) { c.ShiftMultiplierShifted = 0 }, true},
		{"negative_epsilon", func(c *PanCamConfig) { c.TranslationEpsilon = -0.1 }, true},
		{"zero_zoom_epsilon", func(c *PanCamConfig) { c.ZoomEpsilon = 0 }, true},
		{"zero_translation_epsilon", func(c *PanCamConfig) { c.TranslationEpsilon = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPanCamConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidPanCamConfig) {
					t.Fatalf("expected ErrInvalidPanCamConfig, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
}

func TestPanCamConfigBounds(t *testing.T) {
	cfg := DefaultPanCamConfig()
	cfg.MinX = Float64Ptr(-500)
	cfg.MaxX = Float64Ptr(500)
	cfg.MaxY = Float64Ptr(20)

	b := cfg.Bounds()
	if b.L != -500 || b.R != 500 || b.T != 20 || !math.IsInf(b.B, -1) {
		t.Fatalf("unexpected bounds %+v", b)
	}
	x, y := cfg.ScaleConstrained()
	if !x || y {
		t.Fatalf("expected only x to constrain scale, got x=%v y=%v", x, y)
	}
}

func TestPanCamStatePhases(t *testing.T) {
	st := NewPanCamState(1, 4.5)
	if st.Initialized() || !st.IsZooming() {
		t.Fatalf("new state should be bootstrapping, got %s", st.Phase)
	}

	target := cp.Vector{X: 3, Y: 4}
	st.Retarget(4.5, &target)
	if !st.Initialized() || !st.IsZooming() || st.Phase != PhaseAnimating {
		t.Fatalf("retargeted state should be animating, got %s", st.Phase)
	}

	st.Settle()
	if st.IsZooming() || st.Phase != PhaseAtRest {
		t.Fatalf("settled state should be at rest, got %s", st.Phase)
	}
	if PhaseAtRest.String() != "at_rest" {
		t.Fatalf("unexpected phase name %q", PhaseAtRest.String())
	}
}
