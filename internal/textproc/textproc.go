// Package textproc implements the text pipeline that turns raw document or
// query text into index terms. Both stages are pure functions: Normalize
// rewrites the text byte-for-byte, Tokenize splits it into length-filtered
// terms. Every piece of text entering the engine (titles, bodies, queries)
// goes through this package, so ingestion and retrieval always agree on what
// a term is.
package textproc

import "strings"

// MinTermLen is the minimum byte length of an index term. Tokens at or below
// this length ("a", "of", "it") are discarded by Tokenize.
const MinTermLen = 3

// Normalize replaces every byte that is not ASCII alphanumeric and not ASCII
// whitespace with a single space, and lowercases A-Z. Whitespace bytes pass
// through unchanged. The result always has the same length as the input, so
// positions found in normalized text are valid positions in the original.
func Normalize(text string) string {
	b := []byte(text)
	for i, c := range b {
		switch {
		case c >= 'A' && c <= 'Z':
			b[i] = c + ('a' - 'A')
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case isSpace(c):
		default:
			b[i] = ' '
		}
	}
	return string(b)
}

// Tokenize normalizes text and splits it on runs of whitespace, dropping any
// token shorter than MinTermLen bytes. Source order and duplicates are
// preserved. Deterministic: identical input always yields identical output.
func Tokenize(text string) []string {
	fields := strings.Fields(Normalize(text))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= MinTermLen {
			terms = append(terms, f)
		}
	}
	return terms
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
