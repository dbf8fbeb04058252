package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/hay-kot/nudge/internal/core/dialog"
	"github.com/hay-kot/nudge/internal/core/notify"
)

// RunOptions configures Run.
type RunOptions struct {
	Options

	AltScreen bool
	Input     io.Reader // defaults to stdin
	Output    io.Writer // defaults to stdout

	// Toast, when set, has the program's toast notifier attached for the
	// duration of the run so work can keep using the same helper.
	Toast  *notify.Toast
	Toasts *Toasts

	Logger zerolog.Logger
}

// Session is handed to the work function while the program runs.
type Session struct {
	program *tea.Program
	seq     atomic.Uint64
}

// SetStatus replaces the text shown while no dialog is open. When calls
// race, the last one made wins.
func (s *Session) SetStatus(text string) {
	msg := statusMsg{seq: s.seq.Add(1), text: text}
	go s.program.Send(msg)
}

// Work runs alongside the program. When it returns the program exits once
// any visible toasts have expired.
type Work func(ctx context.Context, s *Session) error

// Run starts a Bubble Tea program bound to c and runs work concurrently.
// It returns the error from work, or the program's error if it failed to
// run. Any request still pending when the program exits is dismissed.
func Run(ctx context.Context, c *dialog.Confirmer, opts RunOptions, work Work) error {
	toasts := opts.Toasts
	if toasts == nil {
		toasts = NewToasts(0)
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(New(c, opts.Options), progOpts...)

	c.SetOnChange(func(dialog.State) {
		// Send blocks until read by the event loop, and changes are often
		// triggered from inside Update.
		go p.Send(dialogChangedMsg{})
	})
	defer c.SetOnChange(nil)

	toasts.Bind(p.Send)
	defer toasts.Unbind()

	if opts.Toast != nil {
		opts.Toast.Attach(toasts)
		defer opts.Toast.Detach()
	}

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		err := work(workCtx, &Session{program: p})
		errCh <- err
		// Toasts posted by work must reach the model before it sees done
		toasts.Wait()
		p.Send(doneMsg{err: err})
	}()

	_, runErr := p.Run()
	opts.Logger.Debug().AnErr("error", runErr).Msg("tui exited")

	// Unblock work that is still waiting on an answer
	cancel()
	c.Dismiss(dialog.ErrDismissed)
	workErr := <-errCh

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", runErr)
	}

	return workErr
}
