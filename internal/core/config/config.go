// Package config handles configuration loading and validation for nudge.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/nudge/internal/core/dialog"
)

// Toast positions.
const (
	PositionBottomRight = "bottom-right"
	PositionTopRight    = "top-right"
)

// Config holds the application configuration.
type Config struct {
	// Dialog is the content every confirmation starts from.
	Dialog dialog.Config `yaml:"dialog"`
	// Supersede selects what happens to a pending confirmation when a newer
	// one is requested ("reject" or "orphan").
	Supersede string      `yaml:"supersede"`
	Toast     ToastConfig `yaml:"toast"`
	// Markdown renders dialog descriptions with glamour.
	Markdown bool `yaml:"markdown"`
	// Inline prefers the inline huh prompt over the full-screen modal.
	Inline bool `yaml:"inline"`
	// Keys rebinds dialog actions (toggle, submit, confirm, cancel).
	Keys map[string][]string `yaml:"keys"`
}

// ToastConfig controls how the TUI displays toasts.
type ToastConfig struct {
	Duration   time.Duration `yaml:"duration"`
	MaxVisible int           `yaml:"max_visible"`
	Position   string        `yaml:"position"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Dialog:    dialog.DefaultConfig(),
		Supersede: string(dialog.SupersedeReject),
		Toast: ToastConfig{
			Duration:   4 * time.Second,
			MaxVisible: 3,
			Position:   PositionBottomRight,
		},
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			// Unmarshal over the defaults so unset keys keep their default
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any zero-valued options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Dialog.Title == "" {
		c.Dialog.Title = defaults.Dialog.Title
	}
	if c.Dialog.ConfirmText == "" {
		c.Dialog.ConfirmText = defaults.Dialog.ConfirmText
	}
	if c.Dialog.CancelText == "" {
		c.Dialog.CancelText = defaults.Dialog.CancelText
	}
	if c.Dialog.ConfirmVariant == "" {
		c.Dialog.ConfirmVariant = defaults.Dialog.ConfirmVariant
	}
	if c.Supersede == "" {
		c.Supersede = defaults.Supersede
	}
	if c.Toast.Duration == 0 {
		c.Toast.Duration = defaults.Toast.Duration
	}
	if c.Toast.MaxVisible == 0 {
		c.Toast.MaxVisible = defaults.Toast.MaxVisible
	}
	if c.Toast.Position == "" {
		c.Toast.Position = defaults.Toast.Position
	}
}

// SupersedePolicy returns the parsed supersede policy. Validate guarantees
// the value parses.
func (c *Config) SupersedePolicy() dialog.Policy {
	p, err := dialog.ParsePolicy(c.Supersede)
	if err != nil {
		return dialog.SupersedeReject
	}
	return p
}

// ConfirmerOptions returns the dialog options implied by the config.
func (c *Config) ConfirmerOptions() []dialog.ConfirmerOption {
	return []dialog.ConfirmerOption{
		dialog.WithDefaults(c.Dialog),
		dialog.WithSupersedePolicy(c.SupersedePolicy()),
	}
}
