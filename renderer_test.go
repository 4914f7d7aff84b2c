package ask

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRendererRedraw(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := newRenderer(&out)

	err := r.redraw("> ", "hello", 5)
	assert.NoError(t, err)

	got := out.String()
	assert.True(t, strings.HasPrefix(got, eraseLine), "repaint should start by erasing the line")
	assert.Contains(t, got, "> hello")
	// Prompt is 2 columns wide, so cursor offset 5 lands at column 8.
	assert.True(t, strings.HasSuffix(got, "\x1b[8G"))
}

func TestRendererRedrawIdempotent(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := newRenderer(&out)

	assert.NoError(t, r.redraw("> ", "cat", 1))
	first := out.String()
	out.Reset()
	assert.NoError(t, r.redraw("> ", "cat", 1))

	assert.Equal(t, first, out.String(), "repainting unchanged state must produce identical output")
}

func TestRendererStyledPromptWidth(t *testing.T) {
	t.Parallel()

	// Color escapes occupy no columns, so a styled prompt positions the
	// cursor exactly like the plain one.
	var plain, styled bytes.Buffer
	assert.NoError(t, newRenderer(&plain).redraw("> ", "abc", 3))
	assert.NoError(t, newRenderer(&styled).redraw(Green.Sprint("> "), "abc", 3))

	assert.True(t, strings.HasSuffix(plain.String(), "\x1b[6G"))
	assert.True(t, strings.HasSuffix(styled.String(), "\x1b[6G"))
}

func TestPromptWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prompt string
		want   int
	}{
		{name: "plain", prompt: "$ ", want: 2},
		{name: "empty", prompt: "", want: 0},
		{name: "styled", prompt: Cyan.Sprint(">>> "), want: 4},
		{name: "bold styled", prompt: Color{R: 1, Bold: true}.Sprint("ok "), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, promptWidth(tt.prompt))
		})
	}
}

func TestRendererDrawGrid(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := newRenderer(&out)

	err := r.drawGrid([]string{"cat  car", "cap"})
	assert.NoError(t, err)

	got := out.String()
	assert.True(t, strings.HasPrefix(got, saveCursor))
	assert.True(t, strings.HasSuffix(got, restoreCursor), "grid draw must leave the cursor where it was")
	assert.Contains(t, got, "\r\ncat  car")
	assert.Contains(t, got, "\r\ncap")
}

func TestRendererEraseGrid(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	r := newRenderer(&out)

	assert.NoError(t, r.eraseGrid(2))
	got := out.String()
	assert.Equal(t, 2, strings.Count(got, cursorDown))
	assert.Equal(t, 2, strings.Count(got, eraseWholeRow))
	assert.True(t, strings.HasSuffix(got, restoreCursor))

	// Zero rows writes nothing at all.
	out.Reset()
	assert.NoError(t, r.eraseGrid(0))
	assert.Empty(t, out.String())
}
