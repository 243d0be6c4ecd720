package help

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Line is a single help line with its zero-based line number
type Line struct {
	Number int
	Text   string
}

// helpLines adapts help text lines to fuzzy.Source
type helpLines []Line

func (h helpLines) String(i int) string {
	return h[i].Text
}

func (h helpLines) Len() int {
	return len(h)
}

// Search returns the non-blank help lines matching query, best matches first.
// An empty query returns every non-blank line in order.
func Search(text, query string) []Line {
	var lines helpLines
	for i, l := range strings.Split(text, "\n") {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, Line{Number: i, Text: l})
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return lines
	}

	matches := fuzzy.FindFrom(query, lines)
	result := make([]Line, 0, len(matches))
	for _, m := range matches {
		result = append(result, lines[m.Index])
	}
	return result
}
