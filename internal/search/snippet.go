package search

import (
	"strings"

	"github.com/Aman-CERP/minisearch/internal/textproc"
)

const (
	// snippetWindow is the maximum snippet length in bytes, ellipses excluded.
	snippetWindow = 150

	// snippetRadius is how far the window start backs off before the match.
	snippetRadius = 75
)

// GenerateSnippet extracts a bounded excerpt of content around the first
// query-term match, for use as a result preview.
//
// Matching runs over the normalized content, which is length-preserving, so
// match positions map directly onto the original text. The first query term
// (in query order) with any match wins; without a match the window anchors at
// the start. Terms match as raw substrings, not on word boundaries — a query
// term can match inside a longer word. That is intended behavior.
func GenerateSnippet(content string, queryTerms []string) string {
	norm := textproc.Normalize(content)

	bestPos := 0
	for _, term := range queryTerms {
		if pos := strings.Index(norm, term); pos >= 0 {
			bestPos = pos
			break
		}
	}

	start := 0
	if bestPos > snippetRadius {
		start = bestPos - snippetRadius
	}
	length := snippetWindow
	if rest := len(content) - start; rest < length {
		length = rest
	}

	snippet := content[start : start+length]
	if start > 0 {
		snippet = "..." + snippet
	}
	if start+length < len(content) {
		snippet += "..."
	}
	return snippet
}
