package search

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/Aman-CERP/minisearch/internal/index"
	"github.com/Aman-CERP/minisearch/internal/textproc"
)

// Engine owns the document store and index tables and answers free-text
// queries with ranked, snippeted results.
//
// A single RWMutex treats the index as one atomic unit: AddDocument holds the
// write lock for its full duration, Search holds the read lock, so queries
// never observe a partially ingested document and may run concurrently with
// each other. Repeated queries are served from a bounded LRU cache that is
// purged on every ingestion; concurrent identical queries collapse into one
// computation via singleflight.
type Engine struct {
	mu    sync.RWMutex
	idx   *index.Index
	cfg   Config
	cache *lru.Cache[string, []SearchResult]
	group singleflight.Group
}

// New creates an engine with the given configuration.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = def.DefaultLimit
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = def.CacheSize
	}

	// lru.New only fails for a non-positive size, which is guarded above.
	cache, _ := lru.New[string, []SearchResult](cfg.CacheSize)

	return &Engine{
		idx:   index.New(),
		cfg:   cfg,
		cache: cache,
	}
}

// AddDocument ingests one document and returns its assigned identifier.
// Empty title and content are fine: the record is stored, the index is
// untouched beyond it.
func (e *Engine) AddDocument(title, content, url string) int {
	e.mu.Lock()
	id := e.idx.Add(title, content, url)
	e.mu.Unlock()

	// The corpus changed; cached scores and IDF values are stale.
	e.cache.Purge()

	slog.Debug("document_indexed",
		slog.Int("doc_id", id),
		slog.String("title", title))
	return id
}

// LoadBatch ingests pipe-delimited `title|content|url` lines and returns the
// number of documents added. Lines without a delimiter are skipped silently.
func (e *Engine) LoadBatch(lines []string) int {
	added, _ := e.LoadBatchReport(lines)
	return added
}

// LoadBatchReport is LoadBatch with the skipped-line count exposed, for
// callers that want to surface malformed input without treating it as an
// error.
func (e *Engine) LoadBatchReport(lines []string) (added, skipped int) {
	for _, line := range lines {
		rec, ok := ParseBatchLine(line)
		if !ok {
			skipped++
			continue
		}
		e.AddDocument(rec.Title, rec.Content, rec.URL)
		added++
	}

	slog.Debug("batch_loaded",
		slog.Int("added", added),
		slog.Int("skipped", skipped))
	return added, skipped
}

// ComputeTFIDF scores term against the document: raw term frequency times the
// natural log of docCount/documentFrequency. Returns 0 when the document has
// no recorded frequency for term. Whenever the frequency is positive the
// document frequency is at least 1, so the ratio is always defined.
//
// A term present in every document scores 0 via ln(1); with a one-document
// corpus every present term scores 0 through the same mechanism.
func (e *Engine) ComputeTFIDF(term string, docID int) float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tfidf(term, docID)
}

// tfidf is ComputeTFIDF without locking, for use inside Search's read lock.
func (e *Engine) tfidf(term string, docID int) float64 {
	tf := e.idx.TermFrequency(docID, term)
	if tf == 0 {
		return 0.0
	}
	idf := math.Log(float64(e.idx.DocCount()) / float64(e.idx.DocumentFrequency(term)))
	return float64(tf) * idf
}

// Search tokenizes query through the same pipeline as ingestion, accumulates
// TF-IDF scores over the matching posting sets, and returns results ordered
// by descending score (ties broken by ascending document ID) truncated to
// maxResults. A repeated query term accumulates once per repetition.
//
// maxResults <= 0 and queries with no recognized terms both return no
// results.
func (e *Engine) Search(query string, maxResults int) []SearchResult {
	if maxResults <= 0 {
		return nil
	}

	key := fmt.Sprintf("%d|%s", maxResults, query)
	if results, ok := e.cache.Get(key); ok {
		return results
	}

	v, _, _ := e.group.Do(key, func() (any, error) {
		return e.search(key, query, maxResults), nil
	})
	return v.([]SearchResult)
}

func (e *Engine) search(key, query string, maxResults int) []SearchResult {
	// The cache store happens under the same read lock as the computation,
	// so an ingestion's purge can never land between the two.
	e.mu.RLock()
	defer e.mu.RUnlock()

	queryTerms := textproc.Tokenize(query)

	// A document enters the score map as soon as any query term's posting
	// set names it, even if the accumulated score stays 0 (universally
	// common terms). Such matches are still reported.
	scores := make(map[int]float64)
	for _, term := range queryTerms {
		for _, docID := range e.idx.Postings(term) {
			scores[docID] += e.tfidf(term, docID)
		}
	}

	results := make([]SearchResult, 0, len(scores))
	for docID, score := range scores {
		doc, ok := e.idx.Document(docID)
		if !ok {
			continue
		}
		results = append(results, SearchResult{
			DocID:   docID,
			Score:   score,
			Title:   doc.Title,
			Snippet: GenerateSnippet(doc.Content, queryTerms),
			URL:     doc.URL,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].DocID < results[j].DocID
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	e.cache.Add(key, results)

	slog.Debug("search_complete",
		slog.String("query", query),
		slog.Int("results", len(results)))
	return results
}

// DefaultLimit returns the configured default result cap.
func (e *Engine) DefaultLimit() int {
	return e.cfg.DefaultLimit
}

// Stats returns read-only index statistics.
func (e *Engine) Stats() index.Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.idx.Stats()
}
