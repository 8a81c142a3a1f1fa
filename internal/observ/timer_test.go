package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerAddAggregates(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("parse", time.Millisecond)
		}()
	}
	wg.Wait()

	rep := tm.Report()
	if len(rep.Phases) != 1 {
		t.Fatalf("got %d phases, want 1", len(rep.Phases))
	}
	if rep.Phases[0].Count != 8 {
		t.Fatalf("count = %d, want 8", rep.Phases[0].Count)
	}
	if rep.TotalMS != 8 {
		t.Fatalf("total = %v, want 8", rep.TotalMS)
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("lex")
	tm.End(idx, "12 tokens")
	tm.End(99, "ignored")
	s := tm.Summary()
	if !strings.Contains(s, "lex") || !strings.Contains(s, "// 12 tokens") || !strings.Contains(s, "total") {
		t.Fatalf("unexpected summary:\n%s", s)
	}
}

func TestEmptyReport(t *testing.T) {
	if rep := NewTimer().Report(); rep.TotalMS != 0 || rep.Phases != nil {
		t.Fatalf("empty timer report = %+v", rep)
	}
}
