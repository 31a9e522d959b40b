package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"fern/internal/driver"
	"fern/internal/source"
)

// DirOutcome is what ParseDir returned while the progress view was running.
type DirOutcome struct {
	FileSet *source.FileSet
	Results []driver.FileResult
	Err     error
}

// RunParseDir runs driver.ParseDir in the background and renders its
// progress events to out until parsing finishes.
func RunParseDir(ctx context.Context, out io.Writer, title, dir string, files []string, opts driver.DirOptions) DirOutcome {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan DirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ParseDir(ctx, dir, optsCopy)
		outcomeCh <- DirOutcome{FileSet: fs, Results: results, Err: err}
		close(events)
	}()

	model := NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	if uiErr != nil {
		// программа могла выйти раньше: дочитываем события, чтобы воркеры не блокировались
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil && outcome.Err == nil {
		outcome.Err = uiErr
	}
	return outcome
}
