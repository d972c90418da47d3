// Package observ measures the phases of the formatting pipeline.
package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Имена фаз конвейера форматирования.
const (
	PhaseParse   = "parse"
	PhaseBuildIR = "build-ir"
	PhasePrint   = "print"
	PhaseVerify  = "verify"
)

// Phase records the duration and metadata of one pipeline phase.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the phases of a single file. It is not safe for concurrent
// use; give every worker its own timer and merge reports with Aggregate.
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx int, note string) {
	if t == nil || idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Track runs fn as the named phase.
func (t *Timer) Track(name string, fn func() error) error {
	idx := t.Begin(name)
	err := fn()
	note := ""
	if err != nil {
		note = "failed"
	}
	t.End(idx, note)
	return err
}

// Summary returns a human-readable table of the tracked phases.
func (t *Timer) Summary() string {
	return t.Report().Summary()
}

// PhaseReport представляет сжатую информацию о фазе для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	Files   int           `json:"files,omitempty"`
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if t == nil || len(t.phases) == 0 {
		return Report{}
	}
	report := Report{
		Phases: make([]PhaseReport, len(t.phases)),
	}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// Summary renders the report as an aligned table.
func (r Report) Summary() string {
	var sb strings.Builder
	if r.Files > 0 {
		fmt.Fprintf(&sb, "timings (%d files):\n", r.Files)
	} else {
		sb.WriteString("timings:\n")
	}
	for _, p := range r.Phases {
		fmt.Fprintf(&sb, "  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-20s %7.2f ms\n", "total", r.TotalMS)
	return sb.String()
}

// Aggregate sums per-file reports phase by phase, keeping the order in
// which phases were first seen. Safe for concurrent use.
type Aggregate struct {
	mu     sync.Mutex
	files  int
	total  float64
	order  []string
	byName map[string]float64
}

// Add folds one file's report into the aggregate.
func (a *Aggregate) Add(r Report) {
	if len(r.Phases) == 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.byName == nil {
		a.byName = make(map[string]float64, len(r.Phases))
	}
	a.files++
	a.total += r.TotalMS
	for _, p := range r.Phases {
		if _, ok := a.byName[p.Name]; !ok {
			a.order = append(a.order, p.Name)
		}
		a.byName[p.Name] += p.DurationMS
	}
}

// Report returns the summed phases.
func (a *Aggregate) Report() Report {
	a.mu.Lock()
	defer a.mu.Unlock()
	report := Report{Files: a.files, TotalMS: a.total, Phases: make([]PhaseReport, 0, len(a.order))}
	for _, name := range a.order {
		report.Phases = append(report.Phases, PhaseReport{Name: name, DurationMS: a.byName[name]})
	}
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
