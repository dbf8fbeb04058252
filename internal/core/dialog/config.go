// Package dialog implements an awaitable confirmation dialog.
//
// A Confirmer owns the dialog state (visibility and the configuration being
// displayed) and at most one pending Request. Views bind to the state and
// call HandleConfirm or HandleCancel when the user answers.
package dialog

import "fmt"

// Variant is the style tag applied to the confirm button.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantSecondary   Variant = "secondary"
)

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	switch v {
	case VariantDefault, VariantDestructive, VariantOutline, VariantSecondary:
		return true
	default:
		return false
	}
}

// ParseVariant converts s to a Variant. An empty string is the default variant.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return VariantDefault, nil
	}
	v := Variant(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown variant %q", s)
	}
	return v, nil
}

// Config is the content displayed by the dialog.
type Config struct {
	Title          string  `yaml:"title"`
	Description    string  `yaml:"description"`
	ConfirmText    string  `yaml:"confirm_text"`
	CancelText     string  `yaml:"cancel_text"`
	ConfirmVariant Variant `yaml:"confirm_variant"`
}

// DefaultConfig returns the built-in dialog content.
func DefaultConfig() Config {
	return Config{
		Title:          "Are you sure?",
		Description:    "",
		ConfirmText:    "Confirm",
		CancelText:     "Cancel",
		ConfirmVariant: VariantDefault,
	}
}

// Option overrides a single field of a Config. A supplied option always
// wins, including when it sets a field to the empty string.
type Option func(*Config)

func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

func WithDescription(description string) Option {
	return func(c *Config) { c.Description = description }
}

func WithConfirmText(text string) Option {
	return func(c *Config) { c.ConfirmText = text }
}

func WithCancelText(text string) Option {
	return func(c *Config) { c.CancelText = text }
}

func WithVariant(v Variant) Option {
	return func(c *Config) { c.ConfirmVariant = v }
}

// WithConfig replaces every field with the values from cfg.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// Merge returns a copy of c with opts applied in order.
func (c Config) Merge(opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
