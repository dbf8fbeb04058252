package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/hay-kot/nudge/internal/core/dialog"
	"github.com/hay-kot/nudge/internal/styles"
)

// ErrNothingPending is returned by PromptInline when c has no request.
var ErrNothingPending = errors.New("no confirmation pending")

// InlineOptions configures PromptInline.
type InlineOptions struct {
	Input  io.Reader
	Output io.Writer
	// Accessible reads a plain y/n answer line instead of drawing the form,
	// for terminals that are not interactive.
	Accessible bool
}

// PromptInline answers the pending request on c with an inline huh confirm
// form instead of the full-screen modal. Aborting the form dismisses the
// request.
func PromptInline(ctx context.Context, c *dialog.Confirmer, opts InlineOptions) error {
	st := c.State()
	if st.PendingID == 0 {
		return ErrNothingPending
	}

	cfg := st.Config
	confirmed := true

	theme := styles.FormTheme()
	if cfg.ConfirmVariant == dialog.VariantDestructive {
		theme = styles.DestructiveFormTheme()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(cfg.Title).
				Description(cfg.Description).
				Affirmative(cfg.ConfirmText).
				Negative(cfg.CancelText).
				Value(&confirmed),
		),
	).WithTheme(theme).WithAccessible(opts.Accessible)

	if opts.Input != nil {
		form = form.WithInput(opts.Input)
	}
	if opts.Output != nil {
		form = form.WithOutput(opts.Output)
	}

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			c.Dismiss(dialog.ErrDismissed)
			return nil
		}
		c.Dismiss(err)
		return fmt.Errorf("run prompt: %w", err)
	}

	if confirmed {
		c.HandleConfirm()
	} else {
		c.HandleCancel()
	}
	return nil
}
