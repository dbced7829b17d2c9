// Package content holds the list/detail rendering rules shared by the public
// section endpoints: fan-view excerpts and detail-view paragraph splitting.
// Both views are derived from the same fetched record; switching between them
// never goes back to the store.
package content

import "strings"

// ExcerptLength is the fan-view excerpt budget, in runes.
const ExcerptLength = 150

// Excerpt flattens line breaks and truncates the body for the fan view.
func Excerpt(body string, limit int) string {
	flat := strings.Join(strings.Fields(body), " ")
	runes := []rune(flat)
	if len(runes) <= limit {
		return flat
	}
	return strings.TrimRight(string(runes[:limit]), " ") + "..."
}

// Paragraphs splits the body on line breaks for the detail view. Blank lines
// are dropped.
func Paragraphs(body string) []string {
	parts := strings.Split(body, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
