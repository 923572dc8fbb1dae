package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/minisearch/internal/output"
	"github.com/Aman-CERP/minisearch/internal/search"
	"github.com/Aman-CERP/minisearch/internal/ui"
)

// searchOptions holds CLI flags for the search command.
type searchOptions struct {
	limit    int
	format   string // "text", "json"
	dataFile string
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a single query against the corpus",
		Long: `Run one free-text query against the corpus and print TF-IDF ranked
results.

Examples:
  minisearch search "binary search"
  minisearch search "machine learning" --limit 5
  minisearch search "web development" --file docs.txt --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runSearch(cmd, query, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Maximum number of results (default: from config)")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, json")
	cmd.Flags().StringVarP(&opts.dataFile, "file", "f", "", "Load corpus from a pipe-delimited batch file instead of the samples")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, opts searchOptions) error {
	out := output.New(cmd.OutOrStdout())
	styles := ui.GetStyles(noColor || !isTerminal(cmd.OutOrStdout()))

	// Load-time warnings go to stderr so --format json stays parseable.
	eng, err := buildEngine(output.New(cmd.ErrOrStderr()), opts.dataFile)
	if err != nil {
		return err
	}

	limit := opts.limit
	if limit == 0 {
		limit = eng.DefaultLimit()
	}

	results := eng.Search(query, limit)
	slog.Info("search_complete",
		slog.String("query", query),
		slog.Int("results", len(results)))

	if len(results) == 0 {
		out.Statusf("", "No results found for %q", query)
		return nil
	}

	switch opts.format {
	case "json":
		return formatJSON(cmd, results)
	default:
		printResults(out, styles, query, results)
		return nil
	}
}

// formatJSON outputs results in JSON format.
func formatJSON(cmd *cobra.Command, results []search.SearchResult) error {
	type jsonResult struct {
		DocID   int     `json:"doc_id"`
		Score   float64 `json:"score"`
		Title   string  `json:"title"`
		Snippet string  `json:"snippet"`
		URL     string  `json:"url,omitempty"`
	}

	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		out = append(out, jsonResult{
			DocID:   r.DocID,
			Score:   r.Score,
			Title:   r.Title,
			Snippet: r.Snippet,
			URL:     r.URL,
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}
