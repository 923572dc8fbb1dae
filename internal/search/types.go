// Package search provides the query engine of minisearch: TF-IDF scoring,
// ranking, snippet extraction and batch ingestion over the in-memory inverted
// index. The Engine is the only surface host collaborators (CLI, loader)
// talk to.
package search

// SearchResult is a transient, per-query value describing one ranked match.
type SearchResult struct {
	// DocID is the matched document's identifier.
	DocID int

	// Score is the accumulated TF-IDF relevance score. A score of exactly 0
	// is possible when every matched term occurs in every document.
	Score float64

	// Title is copied from the stored document.
	Title string

	// Snippet is a bounded excerpt of the document content around the first
	// query-term match.
	Snippet string

	// URL is copied from the stored document; may be empty.
	URL string
}

// Config tunes the engine. Zero values fall back to defaults.
type Config struct {
	// DefaultLimit is the result cap used when the caller passes no explicit
	// limit (default: 10).
	DefaultLimit int

	// CacheSize is the number of query results kept in the LRU cache
	// (default: 128).
	CacheSize int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 10,
		CacheSize:    128,
	}
}
