package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pancam/prefabs"
)

// FocusScript is an InputSuppressor backed by a tengo script. The script
// reads has_cursor, cursor_x, cursor_y, viewport_w, viewport_h, ui_hovered
// and shift, and assigns the bool global suppressed.
type FocusScript struct {
	name     string
	compiled *tengo.Compiled
	lastErr  string
}

var focusScriptInputs = []string{"has_cursor", "cursor_x", "cursor_y", "viewport_w", "viewport_h", "ui_hovered", "shift"}

func NewFocusScript(name string, src []byte) (*FocusScript, error) {
	fs := &FocusScript{name: name}
	if err := fs.Reload(src); err != nil {
		return nil, err
	}
	return fs, nil
}

// LoadFocusScript compiles a script from the prefab scripts directory.
func LoadFocusScript(name string) (*FocusScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("focus script %q: %w", name, err)
	}
	return NewFocusScript(name, src)
}

// Reload recompiles the script. On error the previous program stays active.
func (fs *FocusScript) Reload(src []byte) error {
	script := tengo.NewScript(src)
	_ = script.Add("has_cursor", false)
	_ = script.Add("cursor_x", 0.0)
	_ = script.Add("cursor_y", 0.0)
	_ = script.Add("viewport_w", 0.0)
	_ = script.Add("viewport_h", 0.0)
	_ = script.Add("ui_hovered", false)
	_ = script.Add("shift", false)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("focus script %q: compile: %w", fs.name, err)
	}
	fs.compiled = compiled
	fs.lastErr = ""
	return nil
}

func (fs *FocusScript) Name() string {
	return fs.name
}

// InputSuppressed runs the script. Run errors are logged once and read as
// not suppressed.
func (fs *FocusScript) InputSuppressed(in FocusInput) bool {
	if fs == nil || fs.compiled == nil {
		return false
	}

	values := []any{in.HasCursor, in.Cursor.X, in.Cursor.Y, in.Viewport.Width, in.Viewport.Height, in.UIHovered, in.Shift}
	for i, name := range focusScriptInputs {
		if err := fs.compiled.Set(name, values[i]); err != nil {
			fs.report(err)
			return false
		}
	}
	if err := fs.compiled.Run(); err != nil {
		fs.report(err)
		return false
	}
	fs.lastErr = ""

	if !fs.compiled.IsDefined("suppressed") {
		return false
	}
	return fs.compiled.Get("suppressed").Bool()
}

func (fs *FocusScript) report(err error) {
	msg := err.Error()
	if msg == fs.lastErr {
		return
	}
	fs.lastErr = msg
	log.Printf("focus script %q: %v", fs.name, err)
}
