// Command replay runs a scripted sequence of pointer input through the
// pan/zoom pipeline without opening a window and prints the camera pose.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/milk9111/pancam/ecs"
	"github.com/milk9111/pancam/ecs/component"
	"github.com/milk9111/pancam/ecs/entity"
	"github.com/milk9111/pancam/ecs/system"
	"github.com/milk9111/pancam/prefabs"
	"gopkg.in/yaml.v3"
)

// Script is the replay file format.
type Script struct {
	Viewport struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"viewport"`
	// Delta is the frame time in seconds. Defaults to 1/60.
	Delta  float64 `yaml:"dt"`
	Frames []Step  `yaml:"frames"`
}

// Step is one or more identical frames of input. A missing cursor means the
// pointer is outside the window.
type Step struct {
	Repeat    int       `yaml:"repeat"`
	Cursor    []float64 `yaml:"cursor"`
	Buttons   []string  `yaml:"buttons"`
	Shift     bool      `yaml:"shift"`
	Scroll    float64   `yaml:"scroll"`
	Lines     float64   `yaml:"lines"`
	UIHovered bool      `yaml:"ui_hovered"`
}

func main() {
	cameraPrefab := flag.String("camera", "camera.yaml", "camera prefab")
	every := flag.Int("every", 1, "print every Nth frame")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: replay [-camera camera.yaml] [-every n] script.yaml")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		log.Fatalf("replay: parse %s: %v", flag.Arg(0), err)
	}
	spec, err := prefabs.LoadCameraSpec(*cameraPrefab)
	if err != nil {
		log.Fatal(err)
	}
	if err := Run(os.Stdout, spec, script, *every); err != nil {
		log.Fatal(err)
	}
}

// Run replays script against a fresh camera built from spec.
func Run(out io.Writer, spec prefabs.CameraSpec, script Script, every int) error {
	if every < 1 {
		every = 1
	}
	dt := script.Delta
	if dt <= 0 {
		dt = 1.0 / 60.0
	}

	w := ecs.NewWorld()
	in, err := entity.NewInput(w, script.Viewport.Width, script.Viewport.Height)
	if err != nil {
		return err
	}
	cam, err := entity.NewCamera(w, spec)
	if err != nil {
		return err
	}
	scheduler := ecs.NewScheduler(system.NewPanCamSystems(nil)...)

	pointer, _ := ecs.Get(w, in, component.PointerComponent)
	focus, _ := ecs.Get(w, in, component.FocusComponent)
	clock, _ := ecs.Get(w, in, component.FrameClockComponent)
	proj, _ := ecs.Get(w, cam, component.OrthographicProjectionComponent)
	tr, _ := ecs.Get(w, cam, component.TransformComponent)
	st, _ := ecs.Get(w, cam, component.PanCamStateComponent)

	frame := 0
	for i, step := range script.Frames {
		pressed, err := parseButtons(step.Buttons)
		if err != nil {
			return fmt.Errorf("replay: step %d: %w", i, err)
		}
		repeat := max(step.Repeat, 1)
		for r := 0; r < repeat; r++ {
			if len(step.Cursor) == 2 {
				pointer.SetCursor(step.Cursor[0], step.Cursor[1])
			} else {
				pointer.ClearCursor()
			}
			pointer.Pressed = pressed
			pointer.Shift = step.Shift
			if step.Scroll != 0 {
				pointer.PushScroll(step.Scroll, component.ScrollPixel)
			}
			if step.Lines != 0 {
				pointer.PushScroll(step.Lines, component.ScrollLine)
			}
			focus.UIHovered = step.UIHovered
			clock.Delta = dt
			clock.Frame++

			scheduler.Update(w)
			w.Events().Flush()

			frame++
			if frame%every == 0 {
				fmt.Fprintf(out, "frame=%d scale=%.5f x=%.3f y=%.3f phase=%s\n", frame, proj.Scale, tr.Translation.X, tr.Translation.Y, st.Phase)
			}
		}
	}
	return nil
}

func parseButtons(names []string) (component.MouseButtons, error) {
	buttons := make([]component.MouseButton, 0, len(names))
	for _, name := range names {
		b, err := component.ParseMouseButton(name)
		if err != nil {
			return 0, err
		}
		buttons = append(buttons, b)
	}
	return component.NewMouseButtons(buttons...), nil
}
