package notify

import (
	"io"
	"strings"
	"sync"

	"github.com/hay-kot/nudge/internal/printer"
)

// Console prefixes, one per level.
const (
	PrefixSuccess = "Toast:"
	PrefixError   = "Error:"
	PrefixWarning = "Warning:"
	PrefixInfo    = "Info:"
)

// Console is the fallback Notifier. Success and info go to the out stream,
// error and warning to the err stream. Show is a no-op.
type Console struct {
	mu  sync.Mutex
	out *printer.Printer
	err *printer.Printer
}

// NewConsole creates a Console writing plain lines to out and errOut.
func NewConsole(out, errOut io.Writer) *Console {
	return &Console{
		out: printer.NewPlain(out),
		err: printer.NewPlain(errOut),
	}
}

// NewColorConsole is NewConsole with ANSI colors.
func NewColorConsole(out, errOut io.Writer) *Console {
	return &Console{
		out: printer.New(out),
		err: printer.New(errOut),
	}
}

func (c *Console) Success(title, description string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.Successf("%s", line(PrefixSuccess, title, description))
}

func (c *Console) Error(title, description string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err.Errorf("%s", line(PrefixError, title, description))
}

func (c *Console) Warning(title, description string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err.Warnf("%s", line(PrefixWarning, title, description))
}

func (c *Console) Info(title, description string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out.Infof("%s", line(PrefixInfo, title, description))
}

func (c *Console) Show(Options) {}

func line(prefix, title, description string) string {
	parts := []string{prefix, title}
	if description != "" {
		parts = append(parts, description)
	}
	return strings.Join(parts, " ")
}

var _ Notifier = (*Console)(nil)
