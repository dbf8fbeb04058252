package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/nudge/internal/commands"
	"github.com/hay-kot/nudge/internal/core/config"
	"github.com/hay-kot/nudge/internal/core/notify"
	"github.com/hay-kot/nudge/internal/printer"
	"github.com/hay-kot/nudge/pkg/utils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	if err := setupLogger("info", "", nil); err != nil {
		panic(err)
	}

	var (
		p     = printer.New(os.Stderr)
		ctx   = printer.NewContext(context.Background(), p)
		flags = &commands.Flags{}
	)

	var deferredLogs *utils.DeferredWriter

	app := &cli.Command{
		Name:      "nudge",
		Usage:     "Confirmation dialogs and toast notifications for the terminal",
		UsageText: "nudge [global options] command [command options]",
		Description: `nudge asks yes/no questions and shows toasts from scripts and the shell.

Run 'nudge confirm' to ask a single question; the exit status is the answer.
Run 'nudge notify' to show a toast, or 'nudge run' to play a script of both.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("NUDGE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (optional)",
				Sources:     cli.EnvVars("NUDGE_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("NUDGE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// While a dialog owns the terminal, buffer logs to display after exit
			var deferred io.Writer
			if commands.OwnsTerminal(c.Args().First()) && term.IsTerminal(int(os.Stderr.Fd())) {
				deferredLogs = &utils.DeferredWriter{}
				deferred = deferredLogs
			}

			if err := setupLogger(flags.LogLevel, flags.LogFile, deferred); err != nil {
				return ctx, err
			}

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			console := notify.NewConsole(os.Stdout, os.Stderr)
			if term.IsTerminal(int(os.Stdout.Fd())) {
				console = notify.NewColorConsole(os.Stdout, os.Stderr)
			}

			flags.Toast = notify.New(nil, notify.WithConsole(console))
			flags.Logger = log.With().Str("component", "nudge").Logger()
			return ctx, nil
		},
		// Exit codes are resolved in main so deferred logs can be flushed
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	app = commands.NewConfirmCmd(flags).Register(app)
	app = commands.NewNotifyCmd(flags).Register(app)
	app = commands.NewRunCmd(flags).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
			if msg := exitErr.Error(); msg != "" {
				p.Errorf("%s", msg)
			}
		} else {
			fmt.Fprintln(os.Stderr)
			printer.Ctx(ctx).FatalError(err)
			exitCode = 1
		}
	}

	// Flush deferred logs to console after the dialog exits
	if deferredLogs != nil {
		if err := deferredLogs.Flush(zerolog.ConsoleWriter{Out: os.Stderr}); err != nil {
			fmt.Fprintf(os.Stderr, "failed to flush logs: %v\n", err)
		}
	}

	os.Exit(exitCode)
}

func setupLogger(level string, logFile string, deferred io.Writer) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	if logFile != "" {
		// Create log directory if it doesn't exist
		logDir := filepath.Dir(logFile)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		if deferred != nil {
			// Dialog mode with explicit log file - write to both file and deferred buffer
			output = io.MultiWriter(file, deferred)
		} else {
			output = io.MultiWriter(
				zerolog.ConsoleWriter{Out: os.Stderr},
				file,
			)
		}
	} else if deferred != nil {
		output = deferred
	}

	log.Logger = log.Output(output).Level(parsedLevel)

	return nil
}
