// Package loader feeds document corpora into the search engine: a
// pipe-delimited batch file from disk, or the built-in sample corpus. File
// I/O lives here so the engine itself stays free of fallible operations.
package loader

import (
	"bufio"
	"fmt"
	"os"

	"github.com/Aman-CERP/minisearch/internal/errors"
)

// Ingester is the slice of the search engine the loader needs.
type Ingester interface {
	AddDocument(title, content, url string) int
	LoadBatchReport(lines []string) (added, skipped int)
}

// sampleDocument is one built-in demo document.
type sampleDocument struct {
	title   string
	content string
	url     string
}

// samples is the built-in demo corpus.
var samples = []sampleDocument{
	{
		title:   "Introduction to Go Programming",
		content: "Go is a simple and efficient programming language. It is used to build servers, command line tools, cloud infrastructure and much more. Go has first-class support for concurrency.",
		url:     "https://example.com/go-intro",
	},
	{
		title:   "Search Algorithms",
		content: "Search algorithms are fundamental in computer science. They include linear search, binary search, and more complex algorithms like those used in web search engines.",
		url:     "https://example.com/search-algorithms",
	},
	{
		title:   "Data Structures in Go",
		content: "Data structures are essential for organizing and managing data efficiently. In Go we have slices, maps, channels and many other useful data structures.",
		url:     "https://example.com/data-structures",
	},
	{
		title:   "Machine Learning with Python",
		content: "Python is the most popular language for machine learning. Libraries like TensorFlow, PyTorch and scikit-learn make it easy to implement machine learning algorithms.",
		url:     "https://example.com/ml-python",
	},
	{
		title:   "Web Development with JavaScript",
		content: "JavaScript is essential for modern web development. It allows you to create interactive user interfaces and dynamic web applications. It is used in both frontend and backend.",
		url:     "https://example.com/js-web",
	},
}

// LoadSamples ingests the built-in sample corpus and returns the number of
// documents added.
func LoadSamples(ing Ingester) int {
	for _, s := range samples {
		ing.AddDocument(s.title, s.content, s.url)
	}
	return len(samples)
}

// LoadFile reads a pipe-delimited batch file and feeds its lines to the
// engine. Malformed lines are counted as skipped, not errors; a missing or
// unreadable file is a coded error.
func LoadFile(ing Ingester, path string) (added, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, errors.New(errors.ErrCodeFileNotFound,
				fmt.Sprintf("batch file not found: %s", path), err)
		}
		return 0, 0, errors.New(errors.ErrCodeFileRead,
			fmt.Sprintf("cannot open batch file: %s", path), err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	// Documents are short, but allow generous lines before giving up.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, errors.New(errors.ErrCodeFileRead,
			fmt.Sprintf("failed reading batch file: %s", path), err)
	}

	added, skipped = ing.LoadBatchReport(lines)
	return added, skipped, nil
}
