// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorRed    = lipgloss.Color("#f7768e")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorGray   = lipgloss.Color("#565f89")
	ColorWhite  = lipgloss.Color("#c0caf5")
	ColorMuted  = lipgloss.Color("#3b4261")
	ColorInk    = lipgloss.Color("#1a1b26")
	ColorText   = lipgloss.Color("#a9b1d6")
)

// FormTheme returns the huh theme used by inline prompts.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = t.Focused.Title.Foreground(ColorBlue).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorGray)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(ColorInk).Background(ColorBlue).Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(ColorText).Background(ColorMuted)
	t.Blurred = t.Focused

	return t
}

// DestructiveFormTheme is FormTheme with a red affirmative button.
func DestructiveFormTheme() *huh.Theme {
	t := FormTheme()
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(ColorRed)
	t.Blurred = t.Focused
	return t
}
