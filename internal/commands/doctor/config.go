package doctor

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/nudge/internal/core/config"
	"github.com/hay-kot/nudge/internal/core/dialog"
)

// ConfigCheck validates the configuration file and reports the dialog and
// toast settings nudge will run with.
type ConfigCheck struct {
	config     *config.Config
	configPath string
}

// NewConfigCheck creates a new configuration check.
func NewConfigCheck(cfg *config.Config, configPath string) *ConfigCheck {
	return &ConfigCheck{
		config:     cfg,
		configPath: configPath,
	}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	if c.config == nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Config loaded",
			Status: StatusFail,
			Detail: "configuration not loaded",
		})
		return result
	}

	// Settings are only worth reporting once the file is known to be valid
	if err := c.config.ValidateDeep(c.configPath); err != nil {
		result.Items = append(result.Items, failures(err)...)
	} else {
		result.Items = append(result.Items, c.source(), supersede(c.config), defaultDialog(c.config.Dialog),
			toasts(c.config.Toast), keys(c.config.Keys), descriptions(c.config.Markdown))
	}

	for _, w := range c.config.Warnings() {
		label := w.Category
		if w.Item != "" {
			label += "." + w.Item
		}
		result.Items = append(result.Items, CheckItem{
			Label:  label,
			Status: StatusWarn,
			Detail: w.Message,
		})
	}

	return result
}

func failures(err error) []CheckItem {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return []CheckItem{{Label: "validation", Status: StatusFail, Detail: err.Error()}}
	}

	items := make([]CheckItem, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		label := fe.Field
		if label == "" {
			label = "validation"
		}
		items = append(items, CheckItem{Label: label, Status: StatusFail, Detail: fe.Err.Error()})
	}
	return items
}

func (c *ConfigCheck) source() CheckItem {
	item := CheckItem{Label: "Config file", Status: StatusPass, Detail: "built-in defaults"}
	if c.configPath == "" {
		return item
	}
	if _, err := os.Stat(c.configPath); err != nil {
		item.Detail = c.configPath + " not found, using built-in defaults"
		return item
	}
	item.Detail = c.configPath
	return item
}

func supersede(cfg *config.Config) CheckItem {
	detail := "reject: a newer confirmation cancels the pending one"
	if cfg.SupersedePolicy() == dialog.SupersedeOrphan {
		detail = "orphan: a newer confirmation replaces the pending one without answering it"
	}
	return CheckItem{Label: "Supersede policy", Status: StatusPass, Detail: detail}
}

func defaultDialog(d dialog.Config) CheckItem {
	return CheckItem{
		Label:  "Default dialog",
		Status: StatusPass,
		Detail: fmt.Sprintf("%q [%s / %s] %s", d.Title, d.ConfirmText, d.CancelText, d.ConfirmVariant),
	}
}

func toasts(t config.ToastConfig) CheckItem {
	return CheckItem{
		Label:  "Toasts",
		Status: StatusPass,
		Detail: fmt.Sprintf("%s, up to %d shown, %s each", t.Position, t.MaxVisible, t.Duration),
	}
}

func keys(overrides map[string][]string) CheckItem {
	item := CheckItem{Label: "Key overrides", Status: StatusPass, Detail: "none"}
	if len(overrides) == 0 {
		return item
	}

	parts := make([]string, 0, len(overrides))
	for _, action := range slices.Sorted(maps.Keys(overrides)) {
		parts = append(parts, action+"="+strings.Join(overrides[action], ","))
	}
	item.Detail = strings.Join(parts, " ")
	return item
}

func descriptions(markdown bool) CheckItem {
	detail := "plain text"
	if markdown {
		detail = "markdown"
	}
	return CheckItem{Label: "Descriptions", Status: StatusPass, Detail: detail}
}
