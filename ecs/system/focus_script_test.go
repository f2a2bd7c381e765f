package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pancam/ecs/component"
)

func TestFocusScript(t *testing.T) {
	tests := []struct {
		name string
		src  string
		in   FocusInput
		want bool
	}{
		{
			name: "ui_hovered",
			src:  `suppressed := ui_hovered`,
			in:   FocusInput{UIHovered: true},
			want: true,
		},
		{
			name: "left_gutter",
			src:  `suppressed := has_cursor && cursor_x < 100`,
			in:   FocusInput{HasCursor: true, Cursor: cp.Vector{X: 40, Y: 300}},
			want: true,
		},
		{
			name: "outside_gutter",
			src:  `suppressed := has_cursor && cursor_x < 100`,
			in:   FocusInput{HasCursor: true, Cursor: cp.Vector{X: 400, Y: 300}},
			want: false,
		},
		{
			name: "viewport_and_shift",
			src:  `suppressed := shift && viewport_w > 1000`,
			in:   FocusInput{Shift: true, Viewport: component.Viewport{Width: 1280, Height: 720}},
			want: true,
		},
		{
			name: "stdlib_import",
			src: `math := import("math")
suppressed := math.abs(cursor_y - viewport_h) < 10`,
			in:   FocusInput{HasCursor: true, Cursor: cp.Vector{Y: 715}, Viewport: component.Viewport{Width: 800, Height: 720}},
			want: true,
		},
		{
			name: "suppressed_undefined",
			src:  `x := 1`,
			in:   FocusInput{UIHovered: true},
			want: false,
		},
		{
			name: "runtime_error_reads_false",
			src: `step := 1 / int(cursor_x)
suppressed := ui_hovered || step > 0`,
			in:   FocusInput{UIHovered: true},
			want: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs, err := NewFocusScript(tc.name, []byte(tc.src))
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if got := fs.InputSuppressed(tc.in); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFocusScriptReload(t *testing.T) {
	fs, err := NewFocusScript("reload", []byte(`suppressed := true`))
	if err != nil {
		t.Fatal(err)
	}
	if !fs.InputSuppressed(FocusInput{}) {
		t.Fatalf("expected suppressed before reload")
	}

	if err := fs.Reload([]byte(`suppressed := (`)); err == nil {
		t.Fatalf("expected compile error")
	}
	if !fs.InputSuppressed(FocusInput{}) {
		t.Fatalf("a failed reload must keep the previous program")
	}

	if err := fs.Reload([]byte(`suppressed := false`)); err != nil {
		t.Fatal(err)
	}
	if fs.InputSuppressed(FocusInput{}) {
		t.Fatalf("expected new program after reload")
	}

	if _, err := NewFocusScript("bad", []byte(`suppressed := `)); err == nil {
		t.Fatalf("expected NewFocusScript to reject invalid source")
	}
}

func TestLoadFocusScriptFromPrefabs(t *testing.T) {
	fs, err := LoadFocusScript("focus.tengo")
	if err != nil {
		t.Fatalf("load embedded focus script: %v", err)
	}
	if !fs.InputSuppressed(FocusInput{HasCursor: true, UIHovered: true}) {
		t.Fatalf("hovering the HUD should suppress input")
	}
	if fs.InputSuppressed(FocusInput{HasCursor: true}) {
		t.Fatalf("a free cursor should not be suppressed")
	}
	if _, err := LoadFocusScript("missing.tengo"); err == nil {
		t.Fatalf("expected error for missing script")
	}
}

func TestInputGateSuppressesScrollAndDrag(t *testing.T) {
	suppressor := SuppressorFunc(func(in FocusInput) bool {
		return in.HasCursor && in.Cursor.X < 100
	})
	h := newHarness(t, 800, 600, suppressor)
	cam := h.addCamera(component.DefaultPanCamConfig(), 1, cp.Vector{})

	p := h.pointer()
	p.SetCursor(50, 50)
	p.PushScroll(5, component.ScrollPixel)
	h.step(1)

	if !h.focus().Suppressed {
		t.Fatalf("gate should mark focus suppressed")
	}
	v := h.camera(cam)
	if v.state.IsZooming() || v.proj.Scale != 1 {
		t.Fatalf("suppressed scroll should not zoom, phase %s scale %v", v.state.Phase, v.proj.Scale)
	}
	if len(p.Scroll) != 0 {
		t.Fatalf("suppressed scroll should still be drained")
	}

	p.SetCursor(400, 300)
	p.PushScroll(1, component.ScrollPixel)
	h.step(1)
	if h.focus().Suppressed {
		t.Fatalf("gate should release focus")
	}
	if !h.camera(cam).state.IsZooming() {
		t.Fatalf("expected zoom once input is no longer suppressed")
	}
}

func TestInputGateDefaultsToUIHover(t *testing.T) {
	h := newHarness(t, 800, 600, nil)
	h.focus().UIHovered = true
	h.step(1)
	if !h.focus().Suppressed {
		t.Fatalf("without a suppressor UI hover should suppress")
	}
	h.focus().UIHovered = false
	h.step(1)
	if h.focus().Suppressed {
		t.Fatalf("suppression should clear with hover")
	}
}
