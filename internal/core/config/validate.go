package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/nudge/internal/core/dialog"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is usable. Errors are returned as
// criterio.FieldErrors.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if !c.Dialog.ConfirmVariant.Valid() {
		errs = errs.Append("dialog.confirm_variant", fmt.Errorf("unknown variant %q", c.Dialog.ConfirmVariant))
	}

	if _, err := dialog.ParsePolicy(c.Supersede); err != nil {
		errs = errs.Append("supersede", fmt.Errorf("must be one of reject, orphan (got %q)", c.Supersede))
	}

	if c.Toast.Duration < 0 {
		errs = errs.Append("toast.duration", fmt.Errorf("must not be negative"))
	}

	if c.Toast.MaxVisible < 1 {
		errs = errs.Append("toast.max_visible", fmt.Errorf("must be at least 1"))
	}

	switch c.Toast.Position {
	case PositionBottomRight, PositionTopRight:
	default:
		errs = errs.Append("toast.position", fmt.Errorf("must be one of %s, %s (got %q)", PositionBottomRight, PositionTopRight, c.Toast.Position))
	}

	for _, action := range slices.Sorted(maps.Keys(c.Keys)) {
		field := "keys." + action
		if !slices.Contains(keyActions, action) {
			errs = errs.Append(field, fmt.Errorf("unknown action, want one of %s", strings.Join(keyActions, ", ")))
			continue
		}
		if len(c.Keys[action]) == 0 {
			errs = errs.Append(field, fmt.Errorf("at least one key is required"))
			continue
		}
		if slices.Contains(c.Keys[action], "ctrl+c") {
			errs = errs.Append(field, fmt.Errorf("ctrl+c is reserved for quit"))
		}
	}

	return errs.ToError()
}

// keyActions are the dialog actions that can be rebound under keys.
var keyActions = []string{"toggle", "submit", "confirm", "cancel"}

// ValidateDeep runs Validate and also checks the config file itself.
func (c *Config) ValidateDeep(configPath string) error {
	var errs criterio.FieldErrorsBuilder

	if configPath != "" {
		info, err := os.Stat(configPath)
		switch {
		case err == nil && info.IsDir():
			errs = errs.Append("config", fmt.Errorf("%s is a directory, not a file", configPath))
		case err != nil && !os.IsNotExist(err):
			errs = errs.Append("config", fmt.Errorf("cannot access %s: %w", configPath, err))
		}
	}

	if err := errs.ToError(); err != nil {
		return err
	}

	return c.Validate()
}

// Warnings returns non-fatal issues with an otherwise valid config.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.SupersedePolicy() == dialog.SupersedeOrphan {
		warnings = append(warnings, ValidationWarning{
			Category: "Dialog",
			Item:     "supersede",
			Message:  "orphan leaves earlier confirmations waiting forever when a new one is requested",
		})
	}

	if c.Toast.Duration > 0 && c.Toast.Duration < 500*time.Millisecond {
		warnings = append(warnings, ValidationWarning{
			Category: "Toast",
			Item:     "duration",
			Message:  fmt.Sprintf("%s is too short to read", c.Toast.Duration),
		})
	}

	if c.Dialog.ConfirmText == c.Dialog.CancelText {
		warnings = append(warnings, ValidationWarning{
			Category: "Dialog",
			Item:     "confirm_text",
			Message:  "confirm and cancel buttons have the same label",
		})
	}

	return warnings
}
