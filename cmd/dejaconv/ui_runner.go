package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"dejaconv/internal/driver"
	"dejaconv/internal/pipeline"
	"dejaconv/internal/ui"
)

type batchOutcome struct {
	results []driver.FileResult
	err     error
}

// runBatchWithUI runs TranslateDir under a Bubble Tea progress view,
// wiring its events through a channel sink into the model.
func runBatchWithUI(ctx context.Context, title string, files []string, dir string, opts driver.Options) ([]driver.FileResult, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = pipeline.ChannelSink{Ch: events}
		res, err := driver.TranslateDir(ctx, dir, optsCopy)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model)
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
