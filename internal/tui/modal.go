package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"

	"github.com/hay-kot/nudge/internal/core/dialog"
)

// modalMaxWidth caps the rendered dialog width in columns.
const modalMaxWidth = 64

// Modal renders a confirmation dialog for a dialog.Config.
type Modal struct {
	config          dialog.Config
	confirmSelected bool // true = confirm button selected, false = cancel button selected
	markdown        bool
}

// NewModal creates a modal for cfg with the confirm button selected.
func NewModal(cfg dialog.Config, markdown bool) Modal {
	return Modal{
		config:          cfg,
		confirmSelected: true,
		markdown:        markdown,
	}
}

// ToggleSelection switches the selected button.
func (m *Modal) ToggleSelection() {
	m.confirmSelected = !m.confirmSelected
}

// ConfirmSelected returns true if the confirm button is selected.
func (m Modal) ConfirmSelected() bool {
	return m.confirmSelected
}

// Config returns the content the modal displays.
func (m Modal) Config() dialog.Config {
	return m.config
}

// View renders the modal box sized for a screen of the given width, with
// helpLine below the buttons.
func (m Modal) View(width int, helpLine string) string {
	inner := modalMaxWidth
	if width > 0 && width-8 < inner {
		inner = max(width-8, 16)
	}

	var confirmBtn, cancelBtn string
	if m.confirmSelected {
		confirmBtn = confirmButtonStyle(m.config.ConfirmVariant).Render(m.config.ConfirmText)
		cancelBtn = modalButtonStyle.Render(m.config.CancelText)
	} else {
		confirmBtn = modalButtonStyle.Render(m.config.ConfirmText)
		cancelBtn = modalButtonSelectedStyle.Render(m.config.CancelText)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, confirmBtn, "  ", cancelBtn)
	buttonRow := lipgloss.NewStyle().MarginTop(1).Render(buttons)

	parts := []string{modalTitleStyle.Render(m.config.Title)}
	if desc := m.renderDescription(inner); desc != "" {
		parts = append(parts, "", desc)
	}
	parts = append(parts, buttonRow)
	if helpLine != "" {
		parts = append(parts, modalHelpStyle.Render(helpLine))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return modalStyle.MaxWidth(inner + 8).Render(content)
}

// Overlay renders the modal as a layer centered over background, which
// stays visible around it.
func (m Modal) Overlay(background, helpLine string, width, height int) string {
	modal := m.View(width, helpLine)

	bgLayer := lipglossv2.NewLayer(background)
	modalLayer := lipglossv2.NewLayer(modal)

	x := max((width-lipglossv2.Width(modal))/2, 0)
	y := max((height-lipglossv2.Height(modal))/2, 0)
	modalLayer.X(x).Y(y).Z(1)

	compositor := lipglossv2.NewCompositor(bgLayer, modalLayer)
	return compositor.Render()
}

func (m Modal) renderDescription(width int) string {
	if m.config.Description == "" {
		return ""
	}

	if m.markdown {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err == nil {
			if out, err := r.Render(m.config.Description); err == nil {
				return strings.Trim(out, "\n")
			}
		}
	}

	return modalDescriptionStyle.Width(width).Render(m.config.Description)
}
