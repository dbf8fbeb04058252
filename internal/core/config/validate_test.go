package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/nudge/internal/core/dialog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, dialog.DefaultConfig(), cfg.Dialog)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
dialog:
  title: "Really?"
  confirm_variant: destructive
supersede: orphan
toast:
  duration: 2s
markdown: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Really?", cfg.Dialog.Title)
	assert.Equal(t, dialog.VariantDestructive, cfg.Dialog.ConfirmVariant)
	assert.Equal(t, "Confirm", cfg.Dialog.ConfirmText)
	assert.Equal(t, "Cancel", cfg.Dialog.CancelText)
	assert.Equal(t, dialog.SupersedeOrphan, cfg.SupersedePolicy())
	assert.Equal(t, 2*time.Second, cfg.Toast.Duration)
	assert.Equal(t, 3, cfg.Toast.MaxVisible)
	assert.Equal(t, PositionBottomRight, cfg.Toast.Position)
	assert.True(t, cfg.Markdown)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "dialog: [")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
dialog:
  confirm_variant: loud
supersede: queue
toast:
  max_visible: -1
  position: center
`)

	_, err := Load(path)
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 4)
	assert.Equal(t, "dialog.confirm_variant", fieldErrs[0].Field)
	assert.Equal(t, "supersede", fieldErrs[1].Field)
	assert.Equal(t, "toast.max_visible", fieldErrs[2].Field)
	assert.Equal(t, "toast.position", fieldErrs[3].Field)
}

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NegativeDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Toast.Duration = -time.Second

	err := cfg.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Contains(t, fieldErrs[0].Field, "toast.duration")
}

func TestValidateDeep_ConfigIsDirectory(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs[0].Err.Error(), "is a directory")
}

func TestValidateDeep_MissingFileIsFine(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "config.yaml")))
}

func TestWarnings(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Warnings())

	cfg.Supersede = string(dialog.SupersedeOrphan)
	cfg.Toast.Duration = 100 * time.Millisecond
	cfg.Dialog.CancelText = cfg.Dialog.ConfirmText

	warnings := cfg.Warnings()
	require.Len(t, warnings, 3)
	assert.Equal(t, "supersede", warnings[0].Item)
	assert.Equal(t, "duration", warnings[1].Item)
	assert.Equal(t, "confirm_text", warnings[2].Item)
}

func TestConfirmerOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dialog.Title = "Proceed?"

	c := dialog.New(cfg.ConfirmerOptions()...)
	assert.Equal(t, "Proceed?", c.Config().Title)
}

func TestValidate_Keys(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keys = map[string][]string{
		"confirm": {"enter"},
		"explode": {"x"},
		"cancel":  {},
		"toggle":  {"ctrl+c"},
	}

	err := cfg.Validate()
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"keys.cancel", "keys.explode", "keys.toggle"}, fields)
}
