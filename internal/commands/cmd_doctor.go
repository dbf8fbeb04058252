package commands

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/nudge/internal/commands/doctor"
	"github.com/hay-kot/nudge/internal/printer"
)

type DoctorCmd struct {
	flags  *Flags
	format string
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Check the config and whether dialogs can be shown here",
		UsageText:   "nudge doctor [options]",
		Description: "Validates the configuration and reports whether this terminal can show the full-screen dialog or will fall back to the inline prompt.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	terminal := doctor.NewTerminalCheck(cmd.flags.Config != nil && cmd.flags.Config.Inline)
	checks := []doctor.Check{
		doctor.NewConfigCheck(cmd.flags.Config, cmd.flags.ConfigPath),
		terminal,
	}

	results := doctor.RunAll(ctx, checks)

	if cmd.format == "json" {
		return cmd.outputJSON(c, terminal.Mode(), results)
	}

	return cmd.outputText(ctx, terminal.Mode(), results)
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, mode string, results []doctor.Result) error {
	passed, warned, failed := doctor.Summary(results)

	out := struct {
		Healthy    bool            `json:"healthy"`
		DialogMode string          `json:"dialog_mode"`
		Summary    summaryJSON     `json:"summary"`
		Checks     []doctor.Result `json:"checks"`
	}{
		Healthy:    failed == 0,
		DialogMode: mode,
		Summary:    summaryJSON{Passed: passed, Warned: warned, Failed: failed},
		Checks:     results,
	}

	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) outputText(ctx context.Context, mode string, results []doctor.Result) error {
	p := printer.Ctx(ctx)

	for _, result := range results {
		p.Section(result.Name)

		for _, item := range result.Items {
			switch item.Status {
			case doctor.StatusPass:
				p.CheckItem(item.Label, item.Detail)
			case doctor.StatusWarn:
				p.WarnItem(item.Label, item.Detail)
			case doctor.StatusFail:
				p.FailItem(item.Label, item.Detail)
			}
		}

		p.Printf("")
	}

	passed, warned, failed := doctor.Summary(results)
	p.Printf("Summary: %d passed, %d warnings, %d failed", passed, warned, failed)
	p.Printf("Confirmations will use the %s dialog", mode)

	if failed > 0 {
		return cli.Exit("", 1)
	}

	return nil
}
