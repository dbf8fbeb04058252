package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/nudge/internal/core/dialog"
	"github.com/hay-kot/nudge/internal/tui"
)

// Exit codes for the confirm command.
const (
	ExitConfirmed = 0
	ExitCancelled = 1
	ExitAborted   = 2
)

type ConfirmCmd struct {
	flags *Flags

	title       string
	description string
	confirmText string
	cancelText  string
	variant     string
	timeout     time.Duration
	inline      bool
	markdown    bool
}

// NewConfirmCmd creates a new confirm command
func NewConfirmCmd(flags *Flags) *ConfirmCmd {
	return &ConfirmCmd{flags: flags}
}

// Register adds the confirm command to the application
func (cmd *ConfirmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "confirm",
		Usage:     "Ask a yes/no question and exit with the answer",
		UsageText: "nudge confirm [options]",
		Description: `Shows a confirmation dialog and exits with status 0 when confirmed,
1 when cancelled and 2 when the dialog is dismissed or times out.

Options that are not given keep the values from the config file.

  nudge confirm --title "Delete branch?" --variant destructive && git branch -D topic`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "dialog title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "text shown under the title",
				Destination: &cmd.description,
			},
			&cli.StringFlag{
				Name:        "confirm-text",
				Usage:       "label of the confirm button",
				Destination: &cmd.confirmText,
			},
			&cli.StringFlag{
				Name:        "cancel-text",
				Usage:       "label of the cancel button",
				Destination: &cmd.cancelText,
			},
			&cli.StringFlag{
				Name:        "variant",
				Usage:       "confirm button style (default, destructive, outline, secondary)",
				Destination: &cmd.variant,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Usage:       "give up after this long (0 waits forever)",
				Destination: &cmd.timeout,
			},
			&cli.BoolFlag{
				Name:        "inline",
				Usage:       "prompt inline instead of opening the full-screen dialog",
				Destination: &cmd.inline,
			},
			&cli.BoolFlag{
				Name:        "markdown",
				Usage:       "render the description as markdown",
				Destination: &cmd.markdown,
			},
		},
		Action: cmd.run,
	})

	return app
}

// options returns dialog overrides for the flags the user actually set.
func (cmd *ConfirmCmd) options(c *cli.Command) ([]dialog.Option, error) {
	var opts []dialog.Option

	if c.IsSet("title") {
		opts = append(opts, dialog.WithTitle(cmd.title))
	}
	if c.IsSet("description") {
		opts = append(opts, dialog.WithDescription(cmd.description))
	}
	if c.IsSet("confirm-text") {
		opts = append(opts, dialog.WithConfirmText(cmd.confirmText))
	}
	if c.IsSet("cancel-text") {
		opts = append(opts, dialog.WithCancelText(cmd.cancelText))
	}
	if c.IsSet("variant") {
		v, err := dialog.ParseVariant(cmd.variant)
		if err != nil {
			return nil, fmt.Errorf("--variant: %w", err)
		}
		opts = append(opts, dialog.WithVariant(v))
	}

	return opts, nil
}

func (cmd *ConfirmCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	log := cmd.flags.Logger.With().Str("command", "confirm").Logger()

	opts, err := cmd.options(c)
	if err != nil {
		return err
	}

	if cmd.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.timeout)
		defer cancel()
	}

	confirmer := dialog.New(append(cfg.ConfirmerOptions(), dialog.WithLogger(log))...)
	req := confirmer.Confirm(opts...)

	inline := cmd.inline || cfg.Inline || !term.IsTerminal(int(os.Stderr.Fd()))
	if inline {
		err = tui.PromptInline(ctx, confirmer, tui.InlineOptions{
			Output:     os.Stderr,
			Accessible: !term.IsTerminal(int(os.Stdin.Fd())),
		})
	} else {
		tuiOpts := tuiOptions(cfg)
		if c.IsSet("markdown") {
			tuiOpts.Markdown = cmd.markdown
		}

		err = tui.Run(ctx, confirmer, tui.RunOptions{
			Options:   tuiOpts,
			AltScreen: true,
			Output:    os.Stderr,
			Logger:    log,
		}, func(ctx context.Context, _ *tui.Session) error {
			_, err := req.Wait(ctx)
			return err
		})
	}

	confirmed, reqErr, settled := req.Result()
	if !settled {
		confirmer.Dismiss(err)
		confirmed, reqErr, _ = req.Result()
	}

	return exitFor(confirmed, errors.Join(reqErr, err))
}

// exitFor maps a confirmation outcome to the command's exit status.
func exitFor(confirmed bool, err error) error {
	switch {
	case err != nil:
		if errors.Is(err, dialog.ErrDismissed) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return cli.Exit("", ExitAborted)
		}
		return err
	case confirmed:
		return nil
	default:
		return cli.Exit("", ExitCancelled)
	}
}
