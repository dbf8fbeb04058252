package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/nudge/internal/core/dialog"
	"github.com/hay-kot/nudge/internal/core/notify"
	"github.com/hay-kot/nudge/internal/core/script"
	"github.com/hay-kot/nudge/internal/printer"
	"github.com/hay-kot/nudge/internal/tui"
	"github.com/hay-kot/nudge/pkg/randid"
	"github.com/hay-kot/nudge/pkg/tmpl"
)

// ScriptOutput is the result of one script.
type ScriptOutput struct {
	Script  string          `json:"script"`
	Name    string          `json:"name,omitempty"`
	Results []script.Result `json:"results"`
}

// RunOutput is the JSON output schema of the run command.
type RunOutput struct {
	RunID   string         `json:"run_id"`
	DryRun  bool           `json:"dry_run,omitempty"`
	Scripts []ScriptOutput `json:"scripts"`
	Toasts  []notify.Call  `json:"toasts,omitempty"`
}

type RunCmd struct {
	flags *Flags

	dryRun bool
	answer bool
	json   bool
	vars   []string
}

// NewRunCmd creates a new run command
func NewRunCmd(flags *Flags) *RunCmd {
	return &RunCmd{flags: flags}
}

// Register adds the run command to the application
func (cmd *RunCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "run",
		Usage:     "Run scripts of confirmations and notifications",
		UsageText: "nudge run [options] <script.yaml|glob>...",
		Description: `Runs each script in order inside a single dialog session. Patterns
support ** globs and are expanded in sorted order.

A script is a list of steps, each holding exactly one of confirm, notify
or show:

  name: release
  steps:
    - confirm:
        title: "Tag {{ .Vars.version }}?"
        variant: destructive
    - notify:
        level: success
        title: "Tagged {{ .Vars.version }}"

A cancelled confirm stops the script unless the step sets
on_cancel: continue.

Exit status is 1 when any script was stopped by a cancel and 2 when the
session was aborted.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "answer every confirmation automatically and record toasts instead of showing them",
				Destination: &cmd.dryRun,
			},
			&cli.BoolFlag{
				Name:        "answer",
				Usage:       "answer used by --dry-run",
				Value:       true,
				Destination: &cmd.answer,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print results as JSON",
				Destination: &cmd.json,
			},
			&cli.StringSliceFlag{
				Name:        "var",
				Usage:       "key=value made available to script templates as .Vars.key",
				Destination: &cmd.vars,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RunCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() == 0 {
		return fmt.Errorf("at least one script is required")
	}

	runID := randid.Generate(6)
	logger := cmd.flags.Logger.With().Str("command", "run").Str("run_id", runID).Logger()

	scripts, err := cmd.load(c.Args().Slice())
	if err != nil {
		return err
	}

	cfg := cmd.flags.Config
	confirmer := dialog.New(append(cfg.ConfirmerOptions(), dialog.WithLogger(logger))...)

	out := RunOutput{RunID: runID, DryRun: cmd.dryRun}

	if cmd.dryRun {
		rec := &notify.Recorder{}
		dialog.AutoAnswer(confirmer, cmd.answer)

		out.Scripts, err = runScripts(ctx, script.NewExecutor(confirmer, rec, logger), scripts, nil, logger)
		out.Toasts = rec.Calls()
	} else {
		toast := cmd.flags.Toast
		err = tui.Run(ctx, confirmer, tui.RunOptions{
			Options:   tuiOptions(cfg),
			AltScreen: true,
			Output:    os.Stderr,
			Toast:     toast,
			Toasts:    tui.NewToasts(cfg.Toast.Duration),
			Logger:    logger,
		}, func(ctx context.Context, s *tui.Session) error {
			var runErr error
			out.Scripts, runErr = runScripts(ctx, script.NewExecutor(confirmer, toast, logger), scripts, s.SetStatus, logger)
			return runErr
		})
	}

	if cmd.json {
		if encErr := writeJSON(c.Root().Writer, out); encErr != nil {
			return encErr
		}
	} else {
		printSummary(printer.Ctx(ctx), out)
	}

	return runExit(out, err)
}

// load expands patterns, then reads and renders every script before any
// of them runs.
func (cmd *RunCmd) load(patterns []string) ([]*script.Script, error) {
	vars, err := tmpl.ParseVars(cmd.vars)
	if err != nil {
		return nil, fmt.Errorf("--var: %w", err)
	}

	paths, err := script.Expand(patterns)
	if err != nil {
		return nil, err
	}

	scripts := make([]*script.Script, 0, len(paths))
	for _, path := range paths {
		s, err := script.Load(path)
		if err != nil {
			return nil, err
		}

		rendered, err := s.Render(vars)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		scripts = append(scripts, rendered)
	}

	return scripts, nil
}

// runScripts runs each script in turn. It stops early only when ctx ends.
func runScripts(ctx context.Context, exec *script.Executor, scripts []*script.Script, status func(string), log zerolog.Logger) ([]ScriptOutput, error) {
	outputs := make([]ScriptOutput, 0, len(scripts))

	for i, s := range scripts {
		if status != nil {
			status(fmt.Sprintf("%s (%d/%d)", scriptLabel(s), i+1, len(scripts)))
		}

		log.Info().Str("script", s.Path).Int("steps", len(s.Steps)).Msg("running script")

		results, err := exec.Run(ctx, s)
		outputs = append(outputs, ScriptOutput{Script: s.Path, Name: s.Name, Results: results})
		if err != nil {
			return outputs, err
		}
	}

	return outputs, nil
}

func scriptLabel(s *script.Script) string {
	if s.Name != "" {
		return s.Name
	}
	return s.Path
}

func printSummary(p *printer.Printer, out RunOutput) {
	for _, so := range out.Scripts {
		p.Section(scriptLabel(&script.Script{Name: so.Name, Path: so.Script}))

		for _, r := range so.Results {
			label := r.Kind
			if r.Title != "" {
				label += " " + r.Title
			}

			switch r.Status {
			case script.StatusConfirmed, script.StatusNotified:
				p.CheckItem(label, r.Status)
			case script.StatusFailed:
				p.FailItem(label, r.Error)
			default:
				p.WarnItem(label, r.Status)
			}
		}
	}

	if out.DryRun && len(out.Toasts) > 0 {
		p.Section("Toasts")
		for _, call := range out.Toasts {
			title, desc := call.Title, call.Description
			if call.Method == notify.MethodShow {
				title, desc = call.Options.Title, call.Options.Description
			}
			p.Printf("  %s %s", call.Method, title)
			p.Detail(desc)
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// runExit maps the run outcome to an exit status.
func runExit(out RunOutput, err error) error {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return cli.Exit("", ExitAborted)
		}
		return err
	}

	for _, so := range out.Scripts {
		for _, r := range so.Results {
			if r.Status == script.StatusSkipped || r.Status == script.StatusFailed {
				return cli.Exit("", ExitCancelled)
			}
		}
	}

	return nil
}
