package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsPrefabChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "camera.yaml")
	if err := os.WriteFile(target, []byte("name: camera\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("events channel should be closed")
	}
	if got := w.Poll(); len(got) != 0 {
		t.Fatalf("poll after close should be empty, got %v", got)
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestFileKinds(t *testing.T) {
	tests := []struct {
		path         string
		spec, script bool
	}{
		{"camera.yaml", true, false},
		{"CAMERA.YML", true, false},
		{"scripts/focus.tengo", false, true},
		{"focus.lua", false, false},
		{"notes.txt", false, false},
	}
	for _, tc := range tests {
		if IsSpecFile(tc.path) != tc.spec || IsScriptFile(tc.path) != tc.script {
			t.Fatalf("%s: spec=%v script=%v", tc.path, IsSpecFile(tc.path), IsScriptFile(tc.path))
		}
	}
}

func TestWatcherPollErrors(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}

	if errs := w.PollErrors(); len(errs) != 0 {
		t.Fatalf("expected no errors on a fresh watcher, got %v", errs)
	}

	overflow := errors.New("event queue overflow")
	w.Errors <- overflow
	errs := w.PollErrors()
	if len(errs) != 1 || !errors.Is(errs[0], overflow) {
		t.Fatalf("expected the queued error, got %v", errs)
	}
	if errs := w.PollErrors(); len(errs) != 0 {
		t.Fatalf("expected the queue to be drained, got %v", errs)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if errs := w.PollErrors(); len(errs) != 0 {
		t.Fatalf("expected no errors after close, got %v", errs)
	}
}
