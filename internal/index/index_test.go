package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_AssignsDenseSequentialIDs(t *testing.T) {
	ix := New()

	assert.Equal(t, 0, ix.Add("first", "body one", ""))
	assert.Equal(t, 1, ix.Add("second", "body two", ""))
	assert.Equal(t, 2, ix.Add("third", "body three", ""))
	assert.Equal(t, 3, ix.DocCount())
}

func TestAdd_StoresDocumentVerbatim(t *testing.T) {
	ix := New()
	id := ix.Add("Search Algorithms", "Search algorithms are fundamental.", "https://example.com/search")

	doc, ok := ix.Document(id)
	require.True(t, ok)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "Search Algorithms", doc.Title)
	assert.Equal(t, "Search algorithms are fundamental.", doc.Content)
	assert.Equal(t, "https://example.com/search", doc.URL)
}

func TestDocument_OutOfRange(t *testing.T) {
	ix := New()
	ix.Add("only", "doc", "")

	_, ok := ix.Document(-1)
	assert.False(t, ok)
	_, ok = ix.Document(1)
	assert.False(t, ok)
}

func TestAdd_TitleTokensCountedTwice(t *testing.T) {
	ix := New()

	// Given: two documents that differ only in where "python" appears
	inTitle := ix.Add("python", "some body text", "")
	inBody := ix.Add("other title", "python body text", "")

	// Then: a title occurrence weighs twice a body occurrence
	assert.Equal(t, 2, ix.TermFrequency(inTitle, "python"))
	assert.Equal(t, 1, ix.TermFrequency(inBody, "python"))
}

func TestAdd_TitleDoublingDoesNotInflateDocumentFrequency(t *testing.T) {
	ix := New()
	ix.Add("cat dog", "the cat sat", "")

	// "cat" occurs three times (doubled title + body) but in one document.
	assert.Equal(t, 3, ix.TermFrequency(0, "cat"))
	assert.Equal(t, 1, ix.DocumentFrequency("cat"))
}

func TestIndex_TablesStayConsistent(t *testing.T) {
	ix := New()
	ix.Add("Introduction to Programming", "Programming languages are versatile tools.", "")
	ix.Add("Search Algorithms", "Search algorithms include linear and binary search.", "")
	ix.Add("Data Structures", "Arrays and maps organize data for search.", "")

	// For every term and document: posting membership iff positive term
	// frequency, and document frequency equals posting-set size.
	for term := range ix.postings {
		ids := ix.Postings(term)
		assert.Equal(t, len(ids), ix.DocumentFrequency(term), "term %q", term)
		for _, id := range ids {
			assert.Positive(t, ix.TermFrequency(id, term), "term %q doc %d", term, id)
		}
	}
	for id := 0; id < ix.DocCount(); id++ {
		for term, count := range ix.termFreq[id] {
			require.Positive(t, count)
			assert.Contains(t, ix.Postings(term), id, "term %q doc %d", term, id)
		}
	}
}

func TestAdd_EmptyDocumentStoresRecordOnly(t *testing.T) {
	ix := New()
	id := ix.Add("", "", "")

	doc, ok := ix.Document(id)
	require.True(t, ok)
	assert.Equal(t, Document{ID: id}, doc)
	assert.Equal(t, 1, ix.DocCount())
	assert.Equal(t, 0, ix.UniqueTermCount())
}

func TestPostings_SortedAscending(t *testing.T) {
	ix := New()
	for i := 0; i < 5; i++ {
		ix.Add("shared term", "shared body", "")
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, ix.Postings("shared"))
	assert.Nil(t, ix.Postings("missing"))
}

func TestStats_CountsDocumentsAndTerms(t *testing.T) {
	ix := New()
	ix.Add("cat dog", "the cat sat", "")

	stats := ix.Stats()
	assert.Equal(t, 1, stats.DocumentCount)
	// Terms: cat, dog, the, sat (three-byte tokens survive the filter).
	assert.Equal(t, 4, stats.UniqueTermCount)
}
