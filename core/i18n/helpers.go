package i18n

import (
	"fmt"
	"strings"
)

// ReplacePlaceholders fills %{name} placeholders in one pass. Unknown names
// stay as written and substituted values are never expanded again.
//
//	ReplacePlaceholders("Project %{current} of %{total}", M{"current": 2, "total": 5})
//	// "Project 2 of 5"
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "%{") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		start := strings.Index(rest, "%{")
		if start < 0 {
			break
		}
		end := strings.IndexByte(rest[start+2:], '}')
		if end < 0 {
			break
		}
		name := rest[start+2 : start+2+end]

		b.WriteString(rest[:start])
		if value, ok := placeholders[name]; ok {
			b.WriteString(fmt.Sprint(value))
		} else {
			b.WriteString(rest[start : start+3+end])
		}
		rest = rest[start+3+end:]
	}
	b.WriteString(rest)

	return b.String()
}
