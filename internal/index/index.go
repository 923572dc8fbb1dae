// Package index owns the in-memory document store and the three term-level
// tables backing minisearch: the inverted index (term -> posting set), the
// per-document term-frequency table, and the document-frequency table.
//
// The Index is a plain data structure and is not safe for concurrent use;
// the search engine that owns it serializes access (exclusive for ingestion,
// shared for queries).
package index

import (
	"sort"

	"github.com/Aman-CERP/minisearch/internal/textproc"
)

// Document is an immutable record in the document store. IDs are dense
// integers assigned in insertion order, starting at 0. Documents are never
// mutated or removed after insertion.
type Document struct {
	ID      int
	Title   string
	Content string
	URL     string
}

// Stats is read-only introspection over the index.
type Stats struct {
	DocumentCount   int
	UniqueTermCount int
}

// Index holds the document store and all term tables. The three tables are
// always updated together by Add, never independently.
type Index struct {
	docs     []Document
	postings map[string]map[int]struct{}
	termFreq []map[string]int // indexed by document ID
	docFreq  map[string]int
}

// New returns an empty index.
func New() *Index {
	return &Index{
		postings: make(map[string]map[int]struct{}),
		docFreq:  make(map[string]int),
	}
}

// Add appends a document and indexes its terms, returning the assigned ID.
//
// Title tokens are counted twice in the combined token stream so that title
// matches outscore body matches. The doubling affects term frequency only:
// the document-frequency pass runs over distinct terms, where the duplicates
// collapse.
func (ix *Index) Add(title, content, url string) int {
	id := len(ix.docs)
	ix.docs = append(ix.docs, Document{ID: id, Title: title, Content: content, URL: url})

	titleTokens := textproc.Tokenize(title)
	contentTokens := textproc.Tokenize(content)

	stream := make([]string, 0, 2*len(titleTokens)+len(contentTokens))
	stream = append(stream, titleTokens...)
	stream = append(stream, titleTokens...)
	stream = append(stream, contentTokens...)

	tf := make(map[string]int, len(stream))
	for _, term := range stream {
		set, ok := ix.postings[term]
		if !ok {
			set = make(map[int]struct{})
			ix.postings[term] = set
		}
		set[id] = struct{}{}
		tf[term]++
	}
	ix.termFreq = append(ix.termFreq, tf)

	// tf's key set is exactly the distinct terms of the stream.
	for term := range tf {
		ix.docFreq[term]++
	}

	return id
}

// Document returns the stored document for id.
func (ix *Index) Document(id int) (Document, bool) {
	if id < 0 || id >= len(ix.docs) {
		return Document{}, false
	}
	return ix.docs[id], true
}

// Postings returns the IDs of all documents containing term, in ascending
// order. Sorting makes iteration order deterministic for ranking and tests.
func (ix *Index) Postings(term string) []int {
	set, ok := ix.postings[term]
	if !ok {
		return nil
	}
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// TermFrequency returns how often term occurs in document id's indexed token
// stream (title occurrences counted twice). Zero when absent.
func (ix *Index) TermFrequency(id int, term string) int {
	if id < 0 || id >= len(ix.termFreq) {
		return 0
	}
	return ix.termFreq[id][term]
}

// DocumentFrequency returns the number of distinct documents containing term.
func (ix *Index) DocumentFrequency(term string) int {
	return ix.docFreq[term]
}

// DocCount returns the number of stored documents.
func (ix *Index) DocCount() int {
	return len(ix.docs)
}

// UniqueTermCount returns the number of distinct terms in the inverted index.
func (ix *Index) UniqueTermCount() int {
	return len(ix.postings)
}

// Stats returns index statistics.
func (ix *Index) Stats() Stats {
	return Stats{
		DocumentCount:   len(ix.docs),
		UniqueTermCount: len(ix.postings),
	}
}
