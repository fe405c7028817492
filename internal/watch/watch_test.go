package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.sexp")
	if err := os.WriteFile(path, []byte("(Crate :items ())"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	w, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		t.Fatalf("Add(%q) error: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte("(Crate :items () :id 1)"), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-w.Events():
			if ev.Path == path && (ev.Op.Has(OpWrite) || ev.Op.Has(OpCreate)) {
				return
			}
		case err := <-w.Errors():
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatalf("no event for %q within deadline", path)
		}
	}
}

func TestOpHas(t *testing.T) {
	op := OpCreate | OpWrite
	if !op.Has(OpWrite) {
		t.Errorf("Has(OpWrite) = false, want true")
	}
	if op.Has(OpRemove) {
		t.Errorf("Has(OpRemove) = true, want false")
	}
}
