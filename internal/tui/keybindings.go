package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Bindable key actions, as named in the config file.
const (
	KeyActionToggle  = "toggle"
	KeyActionSubmit  = "submit"
	KeyActionConfirm = "confirm"
	KeyActionCancel  = "cancel"
)

// KeyActions lists the actions that can be rebound.
var KeyActions = []string{KeyActionToggle, KeyActionSubmit, KeyActionConfirm, KeyActionCancel}

// WithOverrides returns a copy of k with the keys for each named action
// replaced. ctrl+c always quits and cannot be bound to another action.
func (k KeyMap) WithOverrides(overrides map[string][]string) (KeyMap, error) {
	if len(overrides) == 0 {
		return k, nil
	}

	seen := make(map[string]string)

	for _, action := range slices.Sorted(maps.Keys(overrides)) {
		keys := overrides[action]

		binding, err := k.binding(action)
		if err != nil {
			return k, err
		}
		if len(keys) == 0 {
			return k, fmt.Errorf("%s: at least one key is required", action)
		}

		for _, kk := range keys {
			if kk == "ctrl+c" {
				return k, fmt.Errorf("%s: ctrl+c is reserved for quit", action)
			}
			if prev, ok := seen[kk]; ok {
				return k, fmt.Errorf("%s: key %q is already bound to %s", action, kk, prev)
			}
			seen[kk] = action
		}

		*binding = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), binding.Help().Desc),
		)
	}

	return k, nil
}

func (k *KeyMap) binding(action string) (*key.Binding, error) {
	switch action {
	case KeyActionToggle:
		return &k.Toggle, nil
	case KeyActionSubmit:
		return &k.Submit, nil
	case KeyActionConfirm:
		return &k.Confirm, nil
	case KeyActionCancel:
		return &k.Cancel, nil
	default:
		return nil, fmt.Errorf("unknown key action %q (want one of %s)", action, strings.Join(KeyActions, ", "))
	}
}
