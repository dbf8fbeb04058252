package commands

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/hay-kot/nudge/internal/core/config"
	"github.com/hay-kot/nudge/internal/core/notify"
	"github.com/hay-kot/nudge/internal/tui"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Toast is the shared notification helper. Commands attach a notifier
	// to it when they have one; otherwise it writes to the console.
	Toast *notify.Toast

	// Logger is the component logger built in the Before hook
	Logger zerolog.Logger
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "nudge", "config.yaml")
}

// tuiOptions maps the display settings in cfg onto the TUI.
func tuiOptions(cfg *config.Config) tui.Options {
	return tui.Options{
		Markdown:    cfg.Markdown,
		MaxToasts:   cfg.Toast.MaxVisible,
		ToastsOnTop: cfg.Toast.Position == config.PositionTopRight,
		Keys:        cfg.Keys,
	}
}

// OwnsTerminal reports whether the named subcommand may take over the
// terminal with a full-screen dialog.
func OwnsTerminal(command string) bool {
	switch command {
	case "confirm", "run", "notify":
		return true
	default:
		return false
	}
}
