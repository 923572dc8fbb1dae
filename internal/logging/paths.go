package logging

import (
	"os"
	"path/filepath"
)

// DefaultLogDir returns the default log directory (~/.minisearch/logs/),
// falling back to the temp directory when the home directory is unavailable.
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".minisearch", "logs")
	}
	return filepath.Join(home, ".minisearch", "logs")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(DefaultLogDir(), "minisearch.log")
}

// EnsureLogDir creates the directory containing path if needed.
func EnsureLogDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
