package vulkano

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestShaderWatcher(t *testing.T) {
	dir := t.TempDir()

	w, err := NewShaderWatcher(dir)
	if err != nil {
		t.Fatalf("unable to create watcher: %v", err)
	}
	defer w.Close()

	// a non-shader file must not produce an event
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	shader := filepath.Join(dir, "vert.spv")
	if err := os.WriteFile(shader, []byte{0x03, 0x02, 0x23, 0x07}, 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != shader {
			t.Errorf("event for %s, want %s", got, shader)
		}
	case <-time.After(5 * time.Second):
		t.Error("no event for shader write")
	}
}

func TestShaderWatcherMissingDir(t *testing.T) {
	if _, err := NewShaderWatcher(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
