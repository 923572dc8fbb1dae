package search

import "strings"

// BatchLine is one parsed record of the pipe-delimited batch format
// `title|content|url`.
type BatchLine struct {
	Title   string
	Content string
	URL     string
}

// ParseBatchLine parses one batch line. Reports false for lines without a
// pipe, which the loader skips silently (lenient-parsing policy).
//
// Delimiter cases:
//   - no pipe: invalid, skipped
//   - one pipe: content is everything after it, url empty
//   - two or more pipes: content is strictly between the first and second
//     pipe, url is everything after the second pipe verbatim (further pipes
//     are not split)
func ParseBatchLine(line string) (BatchLine, bool) {
	first := strings.IndexByte(line, '|')
	if first < 0 {
		return BatchLine{}, false
	}

	rec := BatchLine{Title: line[:first]}
	rest := line[first+1:]

	if second := strings.IndexByte(rest, '|'); second >= 0 {
		rec.Content = rest[:second]
		rec.URL = rest[second+1:]
	} else {
		rec.Content = rest
	}

	return rec, true
}
