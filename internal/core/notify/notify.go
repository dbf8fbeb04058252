// Package notify forwards leveled toast notifications to a pluggable
// Notifier and falls back to console output when none is attached.
package notify

import (
	"fmt"
	"strings"
	"time"
)

// Level is the severity of a toast.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Levels lists every level in display order.
var Levels = []Level{LevelSuccess, LevelError, LevelWarning, LevelInfo}

// ParseLevel converts s (case-insensitive) to a Level. "warn" is accepted
// as an alias for warning.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "success":
		return LevelSuccess, nil
	case "error":
		return LevelError, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "info", "":
		return LevelInfo, nil
	default:
		return "", fmt.Errorf("unknown level %q", s)
	}
}

// Options is a free-form toast for Notifier.Show.
type Options struct {
	Title       string         `yaml:"title" json:"title,omitempty"`
	Description string         `yaml:"description" json:"description,omitempty"`
	Level       Level          `yaml:"level" json:"level,omitempty"`
	Duration    time.Duration  `yaml:"duration" json:"duration,omitempty"`
	Meta        map[string]any `yaml:"meta" json:"meta,omitempty"`
}

// Notifier displays toasts.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
	Warning(title, description string)
	Info(title, description string)
	Show(opts Options)
}

// Send dispatches a leveled toast to the matching Notifier method. Unknown
// levels are sent as info.
func Send(n Notifier, level Level, title, description string) {
	switch level {
	case LevelSuccess:
		n.Success(title, description)
	case LevelError:
		n.Error(title, description)
	case LevelWarning:
		n.Warning(title, description)
	default:
		n.Info(title, description)
	}
}
