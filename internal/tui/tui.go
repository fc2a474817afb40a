package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/papapumpkin/astronexus/internal/config"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program over opts. The program uses the
// alternate screen buffer and stops when opts.Context is cancelled.
func NewProgram(opts Options, progOpts ...tea.ProgramOption) *Program {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	model := NewAppModel(opts)

	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(opts.Context),
	}
	allOpts = append(allOpts, progOpts...)

	return tea.NewProgram(model, allOpts...)
}

// Run creates and runs a TUI program, blocking until it exits. Config file
// changes are delivered to the running program.
func Run(opts Options, progOpts ...tea.ProgramOption) error {
	p := NewProgram(opts, progOpts...)
	config.Watch(
		func(cfg config.Config) { p.Send(MsgConfigReloaded{Config: cfg}) },
		func(err error) { p.Send(MsgError{Err: err}) },
	)

	log := nopLogger(opts.Logger)
	final, err := p.Run()
	if m, ok := final.(AppModel); ok {
		if n := m.tasks.CancelAll(); n > 0 {
			log.Debug("cancelled pending tasks on exit", zap.Int("tasks", n))
		}
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
			log.Debug("tui stopped by context", zap.Error(opts.Context.Err()))
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	log.Debug("tui exited")
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}

// WithInput returns a program option that reads TUI input from r.
func WithInput(r io.Reader) tea.ProgramOption {
	return tea.WithInput(r)
}

// nopLogger is used when no logger is configured.
func nopLogger(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
