package doctor

import (
	"context"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalCheck reports whether dialogs can be shown full-screen.
type TerminalCheck struct {
	isTerminal func(fd int) bool
	getenv     func(string) string
	inline     bool
}

// NewTerminalCheck creates a terminal check. inline is the configured
// preference for the inline prompt.
func NewTerminalCheck(inline bool) *TerminalCheck {
	return &TerminalCheck{
		isTerminal: term.IsTerminal,
		getenv:     os.Getenv,
		inline:     inline,
	}
}

func (c *TerminalCheck) Name() string {
	return "Terminal"
}

func (c *TerminalCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	streams := []struct {
		label string
		fd    int
	}{
		{"stdin", int(os.Stdin.Fd())},
		{"stderr", int(os.Stderr.Fd())},
	}

	for _, s := range streams {
		if c.isTerminal(s.fd) {
			result.Items = append(result.Items, CheckItem{Label: s.label, Status: StatusPass, Detail: "terminal"})
			continue
		}
		result.Items = append(result.Items, CheckItem{
			Label:  s.label,
			Status: StatusWarn,
			Detail: "not a terminal, confirm falls back to the inline prompt",
		})
	}

	switch t := c.getenv("TERM"); {
	case t == "":
		result.Items = append(result.Items, CheckItem{Label: "TERM", Status: StatusWarn, Detail: "not set"})
	case t == "dumb":
		result.Items = append(result.Items, CheckItem{Label: "TERM", Status: StatusWarn, Detail: "dumb terminal, the dialog cannot be drawn"})
	default:
		result.Items = append(result.Items, CheckItem{Label: "TERM", Status: StatusPass, Detail: t})
	}

	if strings.TrimSpace(c.getenv("NO_COLOR")) != "" {
		result.Items = append(result.Items, CheckItem{Label: "NO_COLOR", Status: StatusPass, Detail: "set, output is uncolored"})
	}

	result.Items = append(result.Items, CheckItem{Label: "Dialog mode", Status: StatusPass, Detail: c.Mode()})

	return result
}

// Mode returns how confirm will ask: "modal" for the full-screen dialog, or
// "inline" when configured to or when stdin or stderr is not a terminal.
func (c *TerminalCheck) Mode() string {
	if c.inline || !c.isTerminal(int(os.Stdin.Fd())) || !c.isTerminal(int(os.Stderr.Fd())) {
		return "inline"
	}
	return "modal"
}
