// Package tui provides the interactive terminal front end.
package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clipdrop/clipdrop/download"
	"github.com/clipdrop/clipdrop/open"
	"github.com/clipdrop/clipdrop/queue"
	"github.com/clipdrop/clipdrop/resolve"
	"github.com/clipdrop/clipdrop/session"
	"golang.org/x/term"
)

// Options wires the TUI to the core. Nil fields get the configured defaults.
type Options struct {
	// Text prefills the input, as when links are piped in.
	Text string

	Runner     *queue.Runner
	Downloader *download.Orchestrator
	Open       func(url string) error
}

func (o *Options) defaults() {
	if o.Runner == nil {
		o.Runner = queue.New(resolve.New(), session.New())
	}
	if o.Runner.State == nil {
		o.Runner.State = session.New()
	}
	if o.Downloader == nil {
		o.Downloader = download.New()
	}
	if o.Open == nil {
		o.Open = open.Start
	}
}

// Run starts the bubbletea program and blocks until the user quits.
func Run(ctx context.Context, options *Options) error {
	options.defaults()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bubble := newBubble(ctx, cancel, options)
	bubble.setState(inputState)

	programOptions := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// stdin carried the pasted text; keys come from the terminal.
		programOptions = append(programOptions, tea.WithInputTTY())
	}

	_, err := tea.NewProgram(bubble, programOptions...).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
