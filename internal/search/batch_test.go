package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBatchLine_DelimiterCases(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		ok     bool
		expect BatchLine
	}{
		{
			name: "no delimiter is skipped",
			line: "just a plain line",
			ok:   false,
		},
		{
			name:   "one delimiter yields empty url",
			line:   "Title|All of this is content",
			ok:     true,
			expect: BatchLine{Title: "Title", Content: "All of this is content"},
		},
		{
			name:   "two delimiters split title content url",
			line:   "Title|Content|https://example.com/doc",
			ok:     true,
			expect: BatchLine{Title: "Title", Content: "Content", URL: "https://example.com/doc"},
		},
		{
			name: "extra delimiters stay in the url verbatim",
			line: "Title|Content|https://example.com/doc?a=1|b=2|c=3",
			ok:   true,
			expect: BatchLine{
				Title:   "Title",
				Content: "Content",
				URL:     "https://example.com/doc?a=1|b=2|c=3",
			},
		},
		{
			name:   "empty fields are preserved",
			line:   "||",
			ok:     true,
			expect: BatchLine{},
		},
		{
			name:   "pipe at start yields empty title",
			line:   "|content only",
			ok:     true,
			expect: BatchLine{Content: "content only"},
		},
		{
			name: "empty line is skipped",
			line: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := ParseBatchLine(tt.line)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expect, rec)
			}
		})
	}
}
