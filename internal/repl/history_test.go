package repl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAppendAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")

	h := NewHistory(path)
	require.NoError(t, h.Load())
	require.NoError(t, h.Append("(+ 1 2)"))
	require.NoError(t, h.Append("(def a 1)"))

	reloaded := NewHistory(path)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 2, reloaded.Len())
	assert.Equal(t, "(+ 1 2)", reloaded.At(0))
	assert.Equal(t, "(def a 1)", reloaded.At(1))
}

func TestHistorySkipsConsecutiveDuplicates(t *testing.T) {
	h := NewHistory("")
	require.NoError(t, h.Append("a"))
	require.NoError(t, h.Append("a"))
	require.NoError(t, h.Append("b"))
	require.NoError(t, h.Append("a"))
	assert.Equal(t, 3, h.Len())
}

func TestHistorySkipsBlankLines(t *testing.T) {
	h := NewHistory("")
	require.NoError(t, h.Append("   "))
	assert.Equal(t, 0, h.Len())
}

func TestHistoryMissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "absent.txt"))
	assert.NoError(t, h.Load())
	assert.Equal(t, 0, h.Len())
}

func TestHistoryAtOutOfRange(t *testing.T) {
	h := NewHistory("")
	assert.Equal(t, "", h.At(0))
	assert.Equal(t, "", h.At(-1))
}

func TestHistoryCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "history.txt")

	h := NewHistory(path)
	require.NoError(t, h.Append("x"))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
