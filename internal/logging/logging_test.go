package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesJSONToFile(t *testing.T) {
	cfg := DebugConfig()
	cfg.FilePath = filepath.Join(t.TempDir(), "logs", "minisearch.log")

	logger, cleanup, err := Setup(cfg)
	require.NoError(t, err)

	logger.Info("search_started", slog.String("query", "cats"))
	cleanup()

	data, err := os.ReadFile(cfg.FilePath)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.SplitN(string(data), "\n", 2)[0]), &entry))
	assert.Equal(t, "search_started", entry["msg"])
	assert.Equal(t, "cats", entry["query"])
}

func TestSetup_RespectsLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "warn"
	cfg.FilePath = filepath.Join(t.TempDir(), "minisearch.log")

	logger, cleanup, err := Setup(cfg)
	require.NoError(t, err)

	logger.Info("suppressed")
	logger.Warn("kept")
	cleanup()

	data, err := os.ReadFile(cfg.FilePath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suppressed")
	assert.Contains(t, string(data), "kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input  string
		expect slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestRotatingWriter_RotatesAtSizeLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minisearch.log")

	// 1 MB limit; three writes of ~600 KB force one rotation.
	w, err := NewRotatingWriter(path, 1, 3)
	require.NoError(t, err)

	chunk := strings.Repeat("x", 600*1024)
	for i := 0; i < 3; i++ {
		_, err = w.Write([]byte(chunk))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
	_, err = os.Stat(path + ".1")
	assert.NoError(t, err, "rotated file should exist")
}

func TestDefaultLogPath_UnderLogDir(t *testing.T) {
	assert.Equal(t, filepath.Join(DefaultLogDir(), "minisearch.log"), DefaultLogPath())
	assert.Contains(t, DefaultLogDir(), ".minisearch")
}
