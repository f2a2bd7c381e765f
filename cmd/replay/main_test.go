package main

import (
	"bufio"
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/milk9111/pancam/ecs/component"
	"github.com/milk9111/pancam/prefabs"
	"gopkg.in/yaml.v3"
)

func boundedSpec() prefabs.CameraSpec {
	return prefabs.CameraSpec{
		PanCam: prefabs.PanCamComponentSpec{
			MinScale: component.Float64Ptr(0.1),
			MinX:     component.Float64Ptr(-500),
			MaxX:     component.Float64Ptr(500),
		},
	}
}

func lastLine(t *testing.T, out string) string {
	t.Helper()
	var last string
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		last = sc.Text()
	}
	if last == "" {
		t.Fatalf("no output")
	}
	return last
}

func TestRunReplaysScript(t *testing.T) {
	data, err := os.ReadFile("testdata/zoom_out.yaml")
	if err != nil {
		t.Fatal(err)
	}
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := Run(&out, boundedSpec(), script, 10); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Count(out.String(), "\n")
	if lines != 42 {
		t.Fatalf("expected 42 sampled frames, got %d", lines)
	}
	if got := lastLine(t, out.String()); got != "frame=420 scale=1.25000 x=0.000 y=0.000 phase=at_rest" {
		t.Fatalf("unexpected final pose %q", got)
	}
}

func TestRunDrag(t *testing.T) {
	script := Script{Frames: []Step{
		{Cursor: []float64{100, 100}, Buttons: []string{"left"}},
		{Cursor: []float64{120, 100}, Buttons: []string{"left"}},
	}}
	script.Viewport.Width, script.Viewport.Height = 800, 600

	var out bytes.Buffer
	if err := Run(&out, prefabs.CameraSpec{}, script, 1); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := lastLine(t, out.String()); !strings.Contains(got, "x=-20.000") {
		t.Fatalf("expected drag to pan 20 units left, got %q", got)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	script := Script{Frames: []Step{{Buttons: []string{"thumb"}}}}
	if err := Run(&bytes.Buffer{}, prefabs.CameraSpec{}, script, 1); err == nil {
		t.Fatalf("expected unknown button error")
	}

	bad := prefabs.CameraSpec{PanCam: prefabs.PanCamComponentSpec{MinScale: component.Float64Ptr(0)}}
	if err := Run(&bytes.Buffer{}, bad, Script{}, 1); err == nil {
		t.Fatalf("expected invalid camera config error")
	}
}
