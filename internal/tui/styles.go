// Package tui implements the Bubble Tea host for confirmation dialogs and
// toasts.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/nudge/internal/core/dialog"
	"github.com/hay-kot/nudge/internal/core/notify"
	"github.com/hay-kot/nudge/internal/styles"
)

// Modal styles.
var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.ColorBlue).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.ColorWhite)

	modalDescriptionStyle = lipgloss.NewStyle().
				Foreground(styles.ColorText)

	modalHelpStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray).
			MarginTop(1)

	modalButtonStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(styles.ColorMuted).
				Foreground(styles.ColorText)

	modalButtonSelectedStyle = lipgloss.NewStyle().
					Padding(0, 1).
					Background(styles.ColorBlue).
					Foreground(styles.ColorInk).
					Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray).
			PaddingLeft(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(styles.ColorBlue)
)

// confirmButtonStyle returns the style of the focused confirm button for a
// variant. Unknown variants look like the default.
func confirmButtonStyle(v dialog.Variant) lipgloss.Style {
	switch v {
	case dialog.VariantDestructive:
		return modalButtonSelectedStyle.Background(styles.ColorRed)
	case dialog.VariantOutline:
		return lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(styles.ColorBlue).
			Bold(true).
			Underline(true)
	case dialog.VariantSecondary:
		return modalButtonSelectedStyle.Background(styles.ColorText)
	default:
		return modalButtonSelectedStyle
	}
}

// Toast styles.
var (
	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(toastWidth)

	toastTitleStyle = lipgloss.NewStyle().Bold(true)

	toastDescriptionStyle = lipgloss.NewStyle().
				Foreground(styles.ColorGray)
)

// levelColor maps a toast level to its accent color.
func levelColor(l notify.Level) lipgloss.Color {
	switch l {
	case notify.LevelSuccess:
		return styles.ColorGreen
	case notify.LevelError:
		return styles.ColorRed
	case notify.LevelWarning:
		return styles.ColorYellow
	default:
		return styles.ColorBlue
	}
}

// levelIcon maps a toast level to its symbol.
func levelIcon(l notify.Level) string {
	switch l {
	case notify.LevelSuccess:
		return "✔"
	case notify.LevelError:
		return "✘"
	case notify.LevelWarning:
		return "▲"
	default:
		return "•"
	}
}
