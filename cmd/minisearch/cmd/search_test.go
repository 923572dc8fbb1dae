package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_TextOutput(t *testing.T) {
	out, err := executeCommand(t, "",
		"search", "programming", "--file", writeBatchFile(t), "--no-color")

	require.NoError(t, err)
	assert.Contains(t, out, `=== Results for: "programming" ===`)
	assert.Contains(t, out, "Found 2 results")
	assert.Contains(t, out, "Go Basics")
	assert.Contains(t, out, "Python Basics")
	assert.Contains(t, out, "URL: https://example.com/go")
}

func TestSearchCmd_MultiWordQueryJoinsArgs(t *testing.T) {
	out, err := executeCommand(t, "",
		"search", "compiled", "language", "--file", writeBatchFile(t), "--no-color")

	require.NoError(t, err)
	assert.Contains(t, out, "Go Basics")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	// A well-formed file keeps the output pure JSON (no skip warning).
	path := filepath.Join(t.TempDir(), "docs.txt")
	lines := "Go Basics|Go is a compiled programming language|https://example.com/go\n" +
		"Python Basics|Python is a dynamically typed programming language|https://example.com/python\n"
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))

	out, err := executeCommand(t, "",
		"search", "python", "--file", path, "--format", "json")

	require.NoError(t, err)

	var results []struct {
		DocID   int     `json:"doc_id"`
		Score   float64 `json:"score"`
		Title   string  `json:"title"`
		Snippet string  `json:"snippet"`
		URL     string  `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Python Basics", results[0].Title)
	assert.Equal(t, "https://example.com/python", results[0].URL)
	assert.Greater(t, results[0].Score, 0.0)
}

func TestSearchCmd_LimitFlag(t *testing.T) {
	out, err := executeCommand(t, "",
		"search", "programming", "--file", writeBatchFile(t), "--limit", "1", "--no-color")

	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 results")
}

func TestSearchCmd_NoMatches(t *testing.T) {
	out, err := executeCommand(t, "",
		"search", "zzz_nonexistent_term", "--file", writeBatchFile(t), "--no-color")

	require.NoError(t, err)
	assert.Contains(t, out, `No results found for "zzz_nonexistent_term"`)
}

func TestSearchCmd_RequiresQuery(t *testing.T) {
	_, err := executeCommand(t, "", "search")

	assert.Error(t, err)
}
