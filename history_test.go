package ask

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRing(entries ...string) *Ring {
	r := NewRing(0)
	for _, e := range entries {
		r.Push(e)
	}
	r.Reset()
	return r
}

func TestRingTraversal(t *testing.T) {
	t.Parallel()

	r := newTestRing("foo", "bar")

	assert.True(t, r.PastEnd())
	assert.True(t, r.AtEnd())
	assert.False(t, r.AtStart())

	// Prev walks toward older entries.
	assert.Equal(t, "bar", r.Prev())
	assert.True(t, r.AtPenultimate())
	assert.Equal(t, "foo", r.Prev())
	assert.True(t, r.AtStart())

	// Next walks back toward the past-end slot.
	assert.Equal(t, "bar", r.Next())
	assert.Equal(t, "", r.Next())
	assert.True(t, r.PastEnd())
}

func TestRingPrevClampedAtStart(t *testing.T) {
	t.Parallel()

	r := newTestRing("only")
	assert.Equal(t, "only", r.Prev())
	assert.True(t, r.AtStart())
	// Further Prev calls stay on the oldest entry.
	assert.Equal(t, "only", r.Prev())
	assert.True(t, r.AtStart())
}

func TestRingEmpty(t *testing.T) {
	t.Parallel()

	r := NewRing(10)
	assert.True(t, r.PastEnd())
	assert.True(t, r.AtStart())
	assert.False(t, r.AtPenultimate())
}

func TestRingPush(t *testing.T) {
	t.Parallel()

	t.Run("ignores empty entries", func(t *testing.T) {
		t.Parallel()
		r := NewRing(10)
		r.Push("")
		assert.Empty(t, r.Entries())
	})

	t.Run("collapses consecutive duplicates", func(t *testing.T) {
		t.Parallel()
		r := NewRing(10)
		r.Push("ls")
		r.Push("ls")
		r.Push("pwd")
		r.Push("ls")
		assert.Equal(t, []string{"ls", "pwd", "ls"}, r.Entries())
	})

	t.Run("trims to the entry cap", func(t *testing.T) {
		t.Parallel()
		r := NewRing(2)
		r.Push("a")
		r.Push("b")
		r.Push("c")
		assert.Equal(t, []string{"b", "c"}, r.Entries())
	})
}

func TestRingReset(t *testing.T) {
	t.Parallel()

	r := newTestRing("a", "b", "c")
	r.Prev()
	r.Prev()
	assert.False(t, r.PastEnd())

	r.Reset()
	assert.True(t, r.PastEnd())
}

func TestFileRingRoundTrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "history")

	r, err := NewFileRing(file, 100)
	require.NoError(t, err)
	r.Push("first")
	r.Push("second")
	require.NoError(t, r.Save())

	loaded, err := NewFileRing(file, 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, loaded.Entries())
	assert.True(t, loaded.PastEnd(), "a loaded ring starts not browsing")
}

func TestFileRingMissingFile(t *testing.T) {
	t.Parallel()

	r, err := NewFileRing(filepath.Join(t.TempDir(), "nope"), 10)
	require.NoError(t, err)
	assert.Empty(t, r.Entries())
}

func TestFileRingLoadSkipsBlankLines(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(file, []byte("one\n\n  \ntwo\n"), 0600))

	r, err := NewFileRing(file, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, r.Entries())
}

func TestFileRingRotation(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "history")
	r, err := NewFileRing(file, 1000)
	require.NoError(t, err)
	r.maxFileSize = 8
	r.Push("some old entry")
	require.NoError(t, r.Save())

	// The file now exceeds the limit, so the next save rotates it away.
	r.Push("newer entry")
	require.NoError(t, r.Save())

	_, err = os.Stat(file + ".1")
	assert.NoError(t, err, "rotation should have created a backup")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "newer entry")
}

func TestFileRingTruncateWithoutBackups(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "history")
	r, err := NewFileRing(file, 1000)
	require.NoError(t, err)
	r.maxFileSize = 4
	r.maxBackups = 0
	r.Push("entry one")
	require.NoError(t, r.Save())
	require.NoError(t, r.Save())

	_, err = os.Stat(file + ".1")
	assert.True(t, os.IsNotExist(err), "no backups should exist")
}

func TestExpandPath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandPath("~/history")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "history"), got)

	got, err = expandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = expandPath("relative/history")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.True(t, strings.HasSuffix(got, filepath.Join("relative", "history")))

	got, err = expandPath("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
