package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/nudge/internal/core/dialog"
)

func TestModal_View(t *testing.T) {
	cfg := dialog.DefaultConfig().Merge(
		dialog.WithDescription("This removes the branch."),
		dialog.WithConfirmText("Remove"),
		dialog.WithCancelText("Keep"),
		dialog.WithVariant(dialog.VariantDestructive),
	)

	m := NewModal(cfg, false)
	view := m.View(100, "enter choose")

	assert.Contains(t, view, "Are you sure?")
	assert.Contains(t, view, "This removes the branch.")
	assert.Contains(t, view, "Remove")
	assert.Contains(t, view, "Keep")
	assert.Contains(t, view, "enter choose")
}

func TestModal_ToggleSelection(t *testing.T) {
	m := NewModal(dialog.DefaultConfig(), false)
	assert.True(t, m.ConfirmSelected())

	m.ToggleSelection()
	assert.False(t, m.ConfirmSelected())

	m.ToggleSelection()
	assert.True(t, m.ConfirmSelected())
}

func TestModal_EmptyDescription(t *testing.T) {
	m := NewModal(dialog.DefaultConfig(), false)
	assert.Equal(t, "", m.renderDescription(40))
}

func TestConfirmButtonStyle_UnknownVariantIsDefault(t *testing.T) {
	assert.Equal(t,
		confirmButtonStyle(dialog.VariantDefault).Render("x"),
		confirmButtonStyle(dialog.Variant("loud")).Render("x"),
	)
}

func TestModal_Overlay(t *testing.T) {
	rows := make([]string, 24)
	for i := range rows {
		rows[i] = strings.Repeat(".", 80)
	}
	rows[0] = "deploying api" + strings.Repeat(".", 67)
	rows[23] = strings.Repeat(".", 67) + "toast: Synced"
	background := strings.Join(rows, "\n")

	m := NewModal(dialog.DefaultConfig().Merge(dialog.WithTitle("Ship it?")), false)
	view := m.Overlay(background, "", 80, 24)

	assert.Contains(t, view, "Ship it?")
	assert.Contains(t, view, "deploying api", "background above the dialog stays visible")
	assert.Contains(t, view, "toast: Synced", "background below the dialog stays visible")
}
