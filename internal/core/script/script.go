// Package script loads and runs YAML scripts of confirmation and
// notification steps.
package script

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/nudge/internal/core/dialog"
	"github.com/hay-kot/nudge/internal/core/notify"
)

// OnCancel values.
const (
	OnCancelStop     = "stop"
	OnCancelContinue = "continue"
)

// Script is an ordered list of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`

	Path string `yaml:"-"`
}

// Step holds exactly one of Confirm, Notify or Show.
type Step struct {
	Confirm *ConfirmStep    `yaml:"confirm"`
	Notify  *NotifyStep     `yaml:"notify"`
	Show    *notify.Options `yaml:"show"`

	// OnCancel applies to confirm steps: "stop" (default) skips the rest of
	// the script when the user cancels.
	OnCancel string `yaml:"on_cancel"`
}

// Kind returns "confirm", "notify", "show" or "" for an empty step.
func (s Step) Kind() string {
	switch {
	case s.Confirm != nil:
		return "confirm"
	case s.Notify != nil:
		return "notify"
	case s.Show != nil:
		return "show"
	default:
		return ""
	}
}

// ConfirmStep asks the user a question. Unset fields keep whatever the
// dialog currently shows.
type ConfirmStep struct {
	Title       *string `yaml:"title"`
	Description *string `yaml:"description"`
	ConfirmText *string `yaml:"confirm_text"`
	CancelText  *string `yaml:"cancel_text"`
	Variant     *string `yaml:"variant"`
}

// Options converts the step into dialog overrides. An empty variant means
// the default one; variants Validate rejects are left out.
func (c ConfirmStep) Options() []dialog.Option {
	var opts []dialog.Option
	if c.Title != nil {
		opts = append(opts, dialog.WithTitle(*c.Title))
	}
	if c.Description != nil {
		opts = append(opts, dialog.WithDescription(*c.Description))
	}
	if c.ConfirmText != nil {
		opts = append(opts, dialog.WithConfirmText(*c.ConfirmText))
	}
	if c.CancelText != nil {
		opts = append(opts, dialog.WithCancelText(*c.CancelText))
	}
	if c.Variant != nil {
		if v, err := dialog.ParseVariant(*c.Variant); err == nil {
			opts = append(opts, dialog.WithVariant(v))
		}
	}
	return opts
}

// NotifyStep sends a leveled toast.
type NotifyStep struct {
	Level       string `yaml:"level"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}

	return &s, nil
}

// Validate checks every step using criterio field errors.
func (s Script) Validate() error {
	if len(s.Steps) == 0 {
		return criterio.NewFieldErrors("steps", fmt.Errorf("array is empty"))
	}

	var errs criterio.FieldErrorsBuilder

	for i, step := range s.Steps {
		field := fmt.Sprintf("steps[%d]", i)

		set := 0
		for _, present := range []bool{step.Confirm != nil, step.Notify != nil, step.Show != nil} {
			if present {
				set++
			}
		}
		if set != 1 {
			errs = errs.Append(field, fmt.Errorf("must have exactly one of confirm, notify, show"))
			continue
		}

		switch step.OnCancel {
		case "", OnCancelStop, OnCancelContinue:
		default:
			errs = errs.Append(field+".on_cancel", fmt.Errorf("must be stop or continue (got %q)", step.OnCancel))
		}

		switch {
		case step.Confirm != nil:
			if v := step.Confirm.Variant; v != nil {
				if _, err := dialog.ParseVariant(*v); err != nil {
					errs = errs.Append(field+".confirm.variant", err)
				}
			}
		case step.Notify != nil:
			if _, err := notify.ParseLevel(step.Notify.Level); err != nil {
				errs = errs.Append(field+".notify.level", err)
			}
			if step.Notify.Title == "" {
				errs = errs.Append(field+".notify.title", fmt.Errorf("is required"))
			}
		case step.Show != nil:
			if step.Show.Level != "" {
				if _, err := notify.ParseLevel(string(step.Show.Level)); err != nil {
					errs = errs.Append(field+".show.level", err)
				}
			}
			if step.Show.Duration < 0 {
				errs = errs.Append(field+".show.duration", fmt.Errorf("must not be negative"))
			}
		}
	}

	return errs.ToError()
}

// Expand resolves doublestar glob patterns into a sorted, de-duplicated list
// of paths. A pattern without matches is kept verbatim so the caller reports
// the missing file.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			matches = []string{pattern}
		}

		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	return paths, nil
}
