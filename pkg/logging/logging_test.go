package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesWarningsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood.log")
	l, err := New(false, path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	l.Info("hidden")
	l.Warn("persist failed")
	_ = l.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(b)
	if strings.Contains(out, "hidden") {
		t.Fatalf("info should be filtered without verbose: %q", out)
	}
	if !strings.Contains(out, "persist failed") {
		t.Fatalf("expected warning in log: %q", out)
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected a logger")
	}
}
