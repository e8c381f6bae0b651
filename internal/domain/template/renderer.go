// Where: internal/domain/template/renderer.go
// What: Render configured placeholder values with text/template and sprig.
// Why: Allow values such as `{{ .Name | upper }}` in the config before literal substitution.
package template

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// RenderValue renders a single value template against data.
// Values without template actions are returned unchanged.
func RenderValue(name, text string, data Data) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse value %q: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render value %q: %w", name, err)
	}
	return buf.String(), nil
}

// RenderValues renders every entry of values and returns a new map.
// Keys are processed in sorted order so the first failure is deterministic.
func RenderValues(values map[string]string, data Data) (map[string]string, error) {
	rendered := make(map[string]string, len(values))
	for _, key := range slices.Sorted(maps.Keys(values)) {
		out, err := RenderValue(key, values[key], data)
		if err != nil {
			return nil, err
		}
		rendered[key] = out
	}
	return rendered, nil
}
