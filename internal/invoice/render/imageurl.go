package render

import (
	"html/template"
	"strings"
)

// ImageURL marks stored image sources as safe for src attributes. Logos
// and watermarks are persisted as data URLs, which the contextual URL
// escaper would otherwise reject. Anything outside the allowed schemes
// renders as an empty source.
func ImageURL(s string) template.URL {
	trimmed := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(trimmed, "data:image/"),
		strings.HasPrefix(trimmed, "https://"),
		strings.HasPrefix(trimmed, "http://"):
		return template.URL(trimmed)
	default:
		return ""
	}
}
