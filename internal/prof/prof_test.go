package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionWritesRequestedFiles(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		CPUProfile: filepath.Join(dir, "cpu.out"),
		MemProfile: filepath.Join(dir, "mem.out"),
		Trace:      filepath.Join(dir, "trace.out"),
	}
	s, err := Start(opts)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	for _, p := range []string{opts.CPUProfile, opts.MemProfile, opts.Trace} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s: %v", filepath.Base(p), err)
		}
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}

func TestNilAndEmptySessions(t *testing.T) {
	var s *Session
	if err := s.Stop(); err != nil {
		t.Fatalf("nil Stop: %v", err)
	}
	empty, err := Start(Options{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := empty.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestStartFailsOnBadPath(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "missing", "cpu.out")
	if _, err := Start(Options{CPUProfile: bad}); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
