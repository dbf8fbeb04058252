package doctor

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/nudge/internal/core/config"
)

func itemByLabel(t *testing.T, r Result, label string) CheckItem {
	t.Helper()
	for _, item := range r.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("no item %q in %v", label, r.Items)
	return CheckItem{}
}

func TestConfigCheck(t *testing.T) {
	t.Run("valid reports effective settings", func(t *testing.T) {
		cfg := config.DefaultConfig()
		r := NewConfigCheck(&cfg, "").Run(context.Background())

		for _, item := range r.Items {
			assert.Equal(t, StatusPass, item.Status, item.Label)
		}
		assert.Equal(t, "built-in defaults", itemByLabel(t, r, "Config file").Detail)
		assert.Contains(t, itemByLabel(t, r, "Supersede policy").Detail, "reject")
		assert.Equal(t, `"Are you sure?" [Confirm / Cancel] default`, itemByLabel(t, r, "Default dialog").Detail)
		assert.Equal(t, "bottom-right, up to 3 shown, 4s each", itemByLabel(t, r, "Toasts").Detail)
		assert.Equal(t, "none", itemByLabel(t, r, "Key overrides").Detail)
		assert.Equal(t, "plain text", itemByLabel(t, r, "Descriptions").Detail)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Supersede = "orphan"
		cfg.Markdown = true
		cfg.Keys = map[string][]string{"confirm": {"y", "enter"}, "cancel": {"q"}}

		r := NewConfigCheck(&cfg, filepath.Join(t.TempDir(), "missing.yaml")).Run(context.Background())
		assert.Contains(t, itemByLabel(t, r, "Config file").Detail, "not found")
		assert.Contains(t, itemByLabel(t, r, "Supersede policy").Detail, "orphan")
		assert.Equal(t, "cancel=q confirm=y,enter", itemByLabel(t, r, "Key overrides").Detail)
		assert.Equal(t, "markdown", itemByLabel(t, r, "Descriptions").Detail)
		assert.Equal(t, StatusWarn, itemByLabel(t, r, "Dialog.supersede").Status)
	})

	t.Run("errors and warnings", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Toast.Position = "middle"
		cfg.Supersede = "orphan"

		r := NewConfigCheck(&cfg, "").Run(context.Background())
		assert.Equal(t, StatusFail, itemByLabel(t, r, "toast.position").Status)
		assert.Equal(t, StatusWarn, itemByLabel(t, r, "Dialog.supersede").Status)
	})

	t.Run("not loaded", func(t *testing.T) {
		r := NewConfigCheck(nil, "").Run(context.Background())
		assert.Equal(t, StatusFail, r.Items[0].Status)
	})
}

func TestTerminalCheck(t *testing.T) {
	env := map[string]string{"TERM": "dumb", "NO_COLOR": "1"}
	check := &TerminalCheck{
		isTerminal: func(int) bool { return false },
		getenv:     func(k string) string { return env[k] },
	}

	r := check.Run(context.Background())
	assert.Equal(t, StatusWarn, itemByLabel(t, r, "stdin").Status)
	assert.Equal(t, StatusWarn, itemByLabel(t, r, "TERM").Status)
	assert.Equal(t, StatusPass, itemByLabel(t, r, "NO_COLOR").Status)
	assert.Equal(t, "inline", itemByLabel(t, r, "Dialog mode").Detail)

	check.isTerminal = func(int) bool { return true }
	env = map[string]string{"TERM": "xterm-256color"}

	r = check.Run(context.Background())
	assert.Equal(t, StatusPass, itemByLabel(t, r, "stderr").Status)
	assert.Equal(t, "xterm-256color", itemByLabel(t, r, "TERM").Detail)
	assert.Equal(t, "modal", itemByLabel(t, r, "Dialog mode").Detail)
	assert.Equal(t, "modal", check.Mode())

	check.inline = true
	assert.Equal(t, "inline", check.Mode())
}

func TestRunAllAndSummary(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Toast.MaxVisible = 0

	results := RunAll(context.Background(), []Check{NewConfigCheck(&cfg, "")})
	require.Len(t, results, 1)
	assert.Equal(t, "fail", results[0].Items[0].StatusStr)

	passed, warned, failed := Summary(results)
	assert.Equal(t, 0, passed)
	assert.Equal(t, 0, warned)
	assert.Equal(t, 1, failed)
}
