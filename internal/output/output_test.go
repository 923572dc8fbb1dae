package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_WithAndWithoutIcon(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.Status("🔍", "searching")
	w.Status("", "indented line")

	assert.Equal(t, "🔍 searching\n   indented line\n", buf.String())
}

func TestStatusf_FormatsArguments(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.Statusf("🔍", "found %d results for %q", 3, "cats")

	assert.Equal(t, "🔍 found 3 results for \"cats\"\n", buf.String())
}

func TestPlain_NoIndentation(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.Plainf("[%d] %s", 1, "Title")

	assert.Equal(t, "[1] Title\n", buf.String())
}

func TestSeverityHelpers(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	w.Success("done")
	w.Warning("careful")
	w.Error("failed")
	w.Newline()

	out := buf.String()
	assert.Contains(t, out, "✅ done")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "❌ failed")
	assert.Contains(t, out, "\n\n")
}
