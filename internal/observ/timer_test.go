package observ

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestTimerTracksPhasesInOrder(t *testing.T) {
	tm := NewTimer()
	if err := tm.Track(PhaseParse, func() error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	boom := errors.New("boom")
	if err := tm.Track(PhasePrint, func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Track must return fn's error, got %v", err)
	}
	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != PhaseParse || r.Phases[1].Name != PhasePrint {
		t.Fatalf("unexpected phases: %+v", r.Phases)
	}
	if r.Phases[1].Note != "failed" {
		t.Errorf("failed phase note = %q", r.Phases[1].Note)
	}
	if !strings.Contains(tm.Summary(), "total") {
		t.Errorf("summary without total:\n%s", tm.Summary())
	}
}

func TestNilTimerIsNoop(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if got := tm.Report(); len(got.Phases) != 0 {
		t.Fatalf("nil timer reported %+v", got)
	}
}

func TestAggregateConcurrent(t *testing.T) {
	var agg Aggregate
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			agg.Add(Report{TotalMS: 3, Phases: []PhaseReport{
				{Name: PhaseParse, DurationMS: 1},
				{Name: PhasePrint, DurationMS: 2},
			}})
		}()
	}
	wg.Wait()
	r := agg.Report()
	if r.Files != 16 || r.TotalMS != 48 {
		t.Fatalf("files=%d total=%v", r.Files, r.TotalMS)
	}
	if len(r.Phases) != 2 || r.Phases[0].DurationMS != 16 || r.Phases[1].DurationMS != 32 {
		t.Fatalf("unexpected phases: %+v", r.Phases)
	}
	if !strings.HasPrefix(r.Summary(), "timings (16 files):") {
		t.Errorf("summary header: %q", r.Summary())
	}
}
