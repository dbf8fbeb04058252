package script

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/nudge/pkg/tmpl"
)

// Render expands templates in the text fields of every step using vars.
// It returns a new Script; s is left untouched.
func (s Script) Render(vars map[string]string) (*Script, error) {
	data := tmpl.Data{Vars: vars}
	if data.Vars == nil {
		data.Vars = map[string]string{}
	}

	out := s
	out.Steps = make([]Step, len(s.Steps))

	var errs criterio.FieldErrorsBuilder

	render := func(field string, text string) string {
		v, err := tmpl.Render(text, data)
		if err != nil {
			errs = errs.Append(field, err)
			return text
		}
		return v
	}

	renderPtr := func(field string, text *string) *string {
		if text == nil {
			return nil
		}
		v := render(field, *text)
		return &v
	}

	for i, step := range s.Steps {
		field := fmt.Sprintf("steps[%d]", i)

		switch {
		case step.Confirm != nil:
			c := *step.Confirm
			c.Title = renderPtr(field+".confirm.title", c.Title)
			c.Description = renderPtr(field+".confirm.description", c.Description)
			c.ConfirmText = renderPtr(field+".confirm.confirm_text", c.ConfirmText)
			c.CancelText = renderPtr(field+".confirm.cancel_text", c.CancelText)
			step.Confirm = &c
		case step.Notify != nil:
			n := *step.Notify
			n.Title = render(field+".notify.title", n.Title)
			n.Description = render(field+".notify.description", n.Description)
			step.Notify = &n
		case step.Show != nil:
			o := *step.Show
			o.Title = render(field+".show.title", o.Title)
			o.Description = render(field+".show.description", o.Description)
			step.Show = &o
		}

		out.Steps[i] = step
	}

	if err := errs.ToError(); err != nil {
		return nil, err
	}
	return &out, nil
}
