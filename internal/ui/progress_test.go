package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tagattr/internal/batch"
)

func TestApplyEventStatuses(t *testing.T) {
	m := NewProgressModel("check", []string{"a.html", "b.html"}, nil).(*progressModel)

	m.applyEvent(batch.Event{File: "a.html", Stage: batch.StageScan, Status: batch.StatusWorking})
	if got := m.items[0].status; got != "scanning" {
		t.Fatalf("status = %q, want %q", got, "scanning")
	}

	m.applyEvent(batch.Event{File: "b.html", Stage: batch.StageScan, Status: batch.StatusCached})
	m.applyEvent(batch.Event{Stage: batch.StageParse, Status: batch.StatusWorking})
	if got := m.items[0].status; got != "parsing" {
		t.Fatalf("a.html status = %q, want %q", got, "parsing")
	}
	if got := m.items[1].status; got != "cached" {
		t.Fatalf("b.html status = %q, want %q", got, "cached")
	}
	if m.stageLabel != "parsing" {
		t.Fatalf("stage label = %q, want %q", m.stageLabel, "parsing")
	}

	m.applyEvent(batch.Event{File: "a.html", Stage: batch.StageCollect, Status: batch.StatusError, Errors: 2})
	if m.items[0].status != "error" || m.items[0].errors != 2 {
		t.Fatalf("a.html = %+v, want error with 2 errors", m.items[0])
	}
	if got := m.percent(); got != 1.0 {
		t.Fatalf("percent = %v, want 1", got)
	}
}

func TestApplyEventUnknownFile(t *testing.T) {
	m := NewProgressModel("check", []string{"a.html"}, nil).(*progressModel)
	if cmd := m.applyEvent(batch.Event{File: "other.html", Status: batch.StatusDone}); cmd != nil {
		t.Fatal("event for unknown file should be ignored")
	}
	if m.items[0].status != "queued" {
		t.Fatalf("status = %q, want queued", m.items[0].status)
	}
}

func TestViewListsFiles(t *testing.T) {
	m := NewProgressModel("check", []string{"a.html", "b.html"}, nil).(*progressModel)
	m.applyEvent(batch.Event{File: "b.html", Stage: batch.StageCollect, Status: batch.StatusError, Errors: 1})
	m.done = true
	view := m.View()
	for _, want := range []string{"done: check", "a.html", "b.html (1)", "queued", "error", "1/2 files, 1 with errors"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"templates/very/long.html", 10, "templat..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestQuitKey(t *testing.T) {
	m := NewProgressModel("check", []string{"a.html"}, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if !Interrupted(next) {
		t.Fatal("model should report interruption")
	}
	if Interrupted(NewProgressModel("check", nil, nil)) {
		t.Fatal("fresh model is not interrupted")
	}
}
