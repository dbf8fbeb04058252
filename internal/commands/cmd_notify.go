package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/nudge/internal/core/dialog"
	"github.com/hay-kot/nudge/internal/core/notify"
	"github.com/hay-kot/nudge/internal/tui"
)

type NotifyCmd struct {
	flags *Flags

	log      bool
	show     bool
	tui      bool
	duration time.Duration
	meta     []string
}

// NewNotifyCmd creates a new notify command
func NewNotifyCmd(flags *Flags) *NotifyCmd {
	return &NotifyCmd{flags: flags}
}

// Register adds the notify command to the application
func (cmd *NotifyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "notify",
		Usage:     "Show a toast notification",
		UsageText: "nudge notify [options] <level> <title> [description]",
		Description: `Sends a toast with the given level (success, error, warning, info).

Without a display attached the toast is written to the console: success and
info on stdout, error and warning on stderr.

  nudge notify success "Deployed" "api v1.4.2 is live"
  nudge notify --tui warning "Disk almost full"`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "log",
				Usage:       "send the toast to the structured log instead of the console",
				Destination: &cmd.log,
			},
			&cli.BoolFlag{
				Name:        "tui",
				Usage:       "display the toast in the terminal UI until it expires",
				Destination: &cmd.tui,
			},
			&cli.BoolFlag{
				Name:        "show",
				Usage:       "send as a free-form toast (dropped when no display is attached)",
				Destination: &cmd.show,
			},
			&cli.DurationFlag{
				Name:        "duration",
				Usage:       "how long the toast stays visible (defaults to toast.duration)",
				Destination: &cmd.duration,
			},
			&cli.StringSliceFlag{
				Name:        "meta",
				Usage:       "key=value metadata attached to a free-form toast",
				Destination: &cmd.meta,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NotifyCmd) run(ctx context.Context, c *cli.Command) error {
	args := c.Args().Slice()
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("expected <level> <title> [description], got %d argument(s)", len(args))
	}

	opts, err := cmd.options(args)
	if err != nil {
		return err
	}

	toast := cmd.flags.Toast
	logger := cmd.flags.Logger.With().Str("command", "notify").Logger()

	if !cmd.tui {
		if n := cmd.notifier(logger, nil); n != nil {
			toast.Attach(n)
			defer toast.Detach()
		}
		cmd.send(toast, opts)
		return nil
	}

	cfg := cmd.flags.Config
	toasts := tui.NewToasts(cfg.Toast.Duration)

	// Attached here rather than by Run so --log keeps receiving the toast
	toast.Attach(cmd.notifier(logger, toasts))
	defer toast.Detach()

	return tui.Run(ctx, dialog.New(cfg.ConfirmerOptions()...), tui.RunOptions{
		Options: tuiOptions(cfg),
		Output:  os.Stderr,
		Toasts:  toasts,
		Logger:  logger,
	}, func(_ context.Context, _ *tui.Session) error {
		cmd.send(toast, opts)
		return nil
	})
}

// notifier returns where the toast goes: the structured log with --log,
// the display when toasts is set, or both. It is nil when neither applies
// and the toast falls back to the console.
func (cmd *NotifyCmd) notifier(logger zerolog.Logger, toasts *tui.Toasts) notify.Notifier {
	var targets notify.Multi
	if cmd.log {
		targets = append(targets, notify.NewLogNotifier(logger))
	}
	if toasts != nil {
		targets = append(targets, toasts)
	}

	switch len(targets) {
	case 0:
		return nil
	case 1:
		return targets[0]
	default:
		return targets
	}
}

// options builds the toast from positional arguments and flags.
func (cmd *NotifyCmd) options(args []string) (notify.Options, error) {
	level, err := notify.ParseLevel(args[0])
	if err != nil {
		return notify.Options{}, err
	}

	opts := notify.Options{
		Level:    level,
		Title:    args[1],
		Duration: cmd.duration,
	}
	if len(args) == 3 {
		opts.Description = args[2]
	}

	for _, kv := range cmd.meta {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return notify.Options{}, fmt.Errorf("--meta: expected key=value, got %q", kv)
		}
		if opts.Meta == nil {
			opts.Meta = make(map[string]any, len(cmd.meta))
		}
		opts.Meta[k] = v
	}

	return opts, nil
}

// send uses Show when asked to, or when a notifier is attached and the
// toast carries settings only Show can express.
func (cmd *NotifyCmd) send(t *notify.Toast, opts notify.Options) {
	extras := opts.Duration > 0 || len(opts.Meta) > 0
	if cmd.show || (extras && t.Attached()) {
		t.Show(opts)
		return
	}
	notify.Send(t, opts.Level, opts.Title, opts.Description)
}
