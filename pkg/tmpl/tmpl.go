// Package tmpl renders the small text templates allowed in script steps.
package tmpl

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	// default returns def when v is empty
	"default": func(def, v string) string {
		if v == "" {
			return def
		}
		return v
	},
	"env":   os.Getenv,
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"trim":  strings.TrimSpace,
}

// Data is the value templates are executed against.
type Data struct {
	Vars map[string]string
}

// Render executes a Go template string with the given data.
// Returns an error if the template is invalid or references undefined keys.
// Strings without template actions are returned unchanged.
//
// Available template functions:
//   - default: {{ default "fallback" .Vars.name }}
//   - env: read an environment variable
//   - upper, lower, trim: string helpers
func Render(text string, data any) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}

	t, err := template.New("").Funcs(funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}

// ParseVars converts key=value pairs into a map. Later pairs win.
func ParseVars(pairs []string) (map[string]string, error) {
	vars := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", kv)
		}
		vars[k] = v
	}
	return vars, nil
}
