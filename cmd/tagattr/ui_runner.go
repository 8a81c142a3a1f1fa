package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tagattr/internal/batch"
	"tagattr/internal/ui"
)

type checkOutcome struct {
	result *batch.Result
	err    error
}

// runCheckWithUI runs batch.Check in the background and draws its progress.
// Quitting the view cancels the check.
func runCheckWithUI(ctx context.Context, files []string, opts batch.Options) (*batch.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan batch.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		opts.Events = events
		res, err := batch.Check(ctx, files, opts)
		outcomeCh <- checkOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("check", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	final, uiErr := program.Run()
	if uiErr != nil || ui.Interrupted(final) {
		cancel()
	}
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
