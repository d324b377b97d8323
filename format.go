package lingo

import (
	"fmt"
	"strings"
)

// M is a map of named placeholder values.
type M map[string]any

// Format applies printf-style positional substitution to a translated
// string. With no arguments the string is returned unchanged, so plain
// translations never pass through fmt.
func Format(s string, args ...any) string {
	if len(args) == 0 {
		return s
	}
	return fmt.Sprintf(s, args...)
}

// substitute routes translation arguments: a lone M replaces named
// placeholders, anything else goes through positional formatting.
func substitute(s string, args []any) string {
	if len(args) == 1 {
		if m, ok := args[0].(M); ok {
			return ReplacePlaceholders(s, m)
		}
	}
	return Format(s, args...)
}

// ReplacePlaceholders replaces {{name}} placeholders in the template with
// values from the provided map. Placeholders without a value remain
// unchanged.
//
// Example:
//
//	template: "Hello, {{name}}! You have {{count}} messages."
//	placeholders: M{"name": "John", "count": 5}
//	returns: "Hello, John! You have 5 messages."
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) < 1 {
		return template
	}

	result := template
	for key, value := range placeholders {
		result = strings.ReplaceAll(result, "{{"+key+"}}", fmt.Sprintf("%v", value))
	}

	return result
}
