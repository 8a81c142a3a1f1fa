package driver

import (
	"time"

	"tagattr/internal/diag"
	"tagattr/internal/observ"
)

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// PhaseEvent describes a timing phase boundary.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted by ParseSource.
// Batch checking uses it to fold per-snippet timings into one report.
type PhaseObserver func(PhaseEvent)

// phases glues the optional observer and the optional timer together.
type phases struct {
	observer PhaseObserver
	timer    *observ.Timer
	started  map[string]time.Time
	idx      map[string]int
}

func newPhases(opts Options) *phases {
	p := &phases{observer: opts.Observer}
	if opts.Timings {
		p.timer = observ.NewTimer()
		p.idx = make(map[string]int, 2)
	}
	if p.observer != nil {
		p.started = make(map[string]time.Time, 2)
	}
	return p
}

func (p *phases) begin(name string) {
	if p.timer != nil {
		p.idx[name] = p.timer.Begin(name)
	}
	if p.observer != nil {
		p.started[name] = time.Now()
		p.observer(PhaseEvent{Name: name, Status: PhaseStart})
	}
}

func (p *phases) end(name, note string) {
	if p.timer != nil {
		p.timer.End(p.idx[name], note)
	}
	if p.observer != nil {
		p.observer(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: time.Since(p.started[name])})
	}
}

// flush кладёт отчёт таймера в bag как info-диагностику.
func (p *phases) flush(bag *diag.Bag, path string) {
	if p.timer == nil {
		return
	}
	report := p.timer.Report()
	appendTimingDiagnostic(bag, timingPayload{
		Kind:    "parse",
		Path:    path,
		TotalMS: report.TotalMS,
		Phases:  report.Phases,
	})
}
