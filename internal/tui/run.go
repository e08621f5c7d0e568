package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned by Pick when the user leaves without choosing.
var ErrCancelled = errors.New("format selection cancelled")

// PickOptions carries the terminal streams the picker runs on.
type PickOptions struct {
	Input  io.Reader
	Output io.Writer
}

// Pick runs the picker until the user chooses a filter or cancels.
func Pick(ctx context.Context, path string, filters []string, preselect string, opts PickOptions) (string, error) {
	if len(filters) == 0 {
		return "", errors.New("no formats registered")
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	final, err := tea.NewProgram(NewModel(path, filters, preselect), progOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("run format picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("unexpected picker model %T", final)
	}
	if selected, ok := m.Selected(); ok {
		return selected, nil
	}
	return "", ErrCancelled
}
