// Where: internal/materialize/substitute.go
// What: Placeholder substitution for template text.
// Why: Templates carry {{key}} markers that are replaced verbatim, never evaluated.
package materialize

import (
	"sort"
	"strings"
)

// Placeholder returns the marker for key, e.g. "{{projectName}}".
func Placeholder(key string) string {
	return "{{" + key + "}}"
}

// Substitute replaces every occurrence of each mapped placeholder with its value.
// Unmapped placeholders are left as they are. Keys are applied in sorted order
// so output does not depend on map iteration.
func Substitute(text string, mapping map[string]string) string {
	if len(mapping) == 0 || text == "" {
		return text
	}
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		if key == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		text = strings.ReplaceAll(text, Placeholder(key), mapping[key])
	}
	return text
}
