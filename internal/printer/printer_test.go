package printer

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_PlainLines(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{"success", func(p *Printer) { p.Successf("saved %d", 3) }, Check + " saved 3\n"},
		{"error", func(p *Printer) { p.Errorf("boom") }, Cross + " boom\n"},
		{"warn", func(p *Printer) { p.Warnf("careful") }, Warn + " careful\n"},
		{"info", func(p *Printer) { p.Infof("fyi") }, Dot + " fyi\n"},
		{"detail", func(p *Printer) { p.Detail("more") }, "  more\n"},
		{"empty detail", func(p *Printer) { p.Detail("") }, ""},
		{"section", func(p *Printer) { p.Section("Errors") }, "Errors\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewPlain(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_Colorized(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Successf("ok")

	assert.Contains(t, buf.String(), ColorGreen)
	assert.Contains(t, buf.String(), ColorReset)
}

func TestPrinter_FatalError(t *testing.T) {
	var buf bytes.Buffer
	NewPlain(&buf).FatalError(errors.New("kaput"))

	assert.Contains(t, buf.String(), "╭ Error")
	assert.Contains(t, buf.String(), "kaput")
}

func TestPrinter_FatalErrorValidation(t *testing.T) {
	var buf bytes.Buffer
	fieldErr := criterio.NewFieldErrors("toast.max_visible", errors.New("must be at least 1"))

	NewPlain(&buf).FatalError(fmt.Errorf("load config: %w", fieldErr))

	out := buf.String()
	assert.Contains(t, out, "╭ Validation Error")
	assert.Contains(t, out, "load config")
	assert.Contains(t, out, "toast.max_visible: must be at least 1")
}

func TestPrinter_FatalErrorNil(t *testing.T) {
	var buf bytes.Buffer
	NewPlain(&buf).FatalError(nil)
	assert.Empty(t, buf.String())
}
