package cmd

import (
	"fmt"

	"github.com/Aman-CERP/minisearch/internal/output"
	"github.com/Aman-CERP/minisearch/internal/search"
	"github.com/Aman-CERP/minisearch/internal/ui"
)

// printResults renders ranked results: rank, title, URL when present,
// snippet, and the score with three decimals.
func printResults(w *output.Writer, styles ui.Styles, query string, results []search.SearchResult) {
	w.Newline()
	w.Plain(styles.Header.Render(fmt.Sprintf("=== Results for: %q ===", query)))
	w.Plainf("Found %d results", len(results))
	w.Newline()

	for i, r := range results {
		w.Plainf("%s %s", styles.Rank.Render(fmt.Sprintf("[%d]", i+1)), styles.Title.Render(r.Title))
		if r.URL != "" {
			w.Status("", styles.URL.Render("URL: "+r.URL))
		}
		w.Status("", styles.Snippet.Render(r.Snippet))
		w.Status("", styles.Score.Render(fmt.Sprintf("Score: %.3f", r.Score)))
		w.Newline()
	}
}

// printStats renders corpus statistics.
func printStats(w *output.Writer, styles ui.Styles, eng *search.Engine) {
	stats := eng.Stats()

	w.Newline()
	w.Plain(styles.Header.Render("=== Search Engine Statistics ==="))
	w.Plainf("Indexed documents: %d", stats.DocumentCount)
	w.Plainf("Unique terms: %d", stats.UniqueTermCount)
	w.Plain(styles.Header.Render("================================"))
}
