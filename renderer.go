package ask

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ANSI control sequences emitted by the renderer.
const (
	eraseLine     = "\r\x1b[K"
	eraseWholeRow = "\x1b[2K"
	saveCursor    = "\x1b[s"
	restoreCursor = "\x1b[u"
	cursorDown    = "\x1b[1B"
)

// ansiStyle matches SGR color/style sequences, which occupy no terminal
// columns and must be ignored when measuring the prompt.
var ansiStyle = regexp.MustCompile("\x1b\\[[0-9;]*m")

// renderer repaints the visible input line and paints/erases the suggestion
// grid shown below it. Each repaint is assembled into one buffer and written
// with a single Write, so a repaint is all-or-nothing on the wire and two
// repaints of the same (prompt, content, cursor) produce identical output.
type renderer struct {
	out io.Writer
}

func newRenderer(out io.Writer) *renderer {
	return &renderer{out: out}
}

// redraw erases the current terminal row, rewrites the prompt followed by the
// content, and parks the cursor at the column for the given offset. content is
// the display form: the caller substitutes mask characters before calling.
func (r *renderer) redraw(prompt, content string, cursor int) error {
	var b strings.Builder
	b.WriteString(eraseLine)
	b.WriteString(prompt)
	b.WriteString(content)
	// Terminal columns are 1-based, so the first content cell sits at
	// promptWidth+1 and the cursor offset is added on top of that.
	fmt.Fprintf(&b, "\x1b[%dG", promptWidth(prompt)+1+cursor)

	_, err := io.WriteString(r.out, b.String())
	return err
}

// drawGrid paints pre-formatted rows below the input line, bracketed by
// save/restore cursor so the input line position is untouched.
func (r *renderer) drawGrid(rows []string) error {
	var b strings.Builder
	b.WriteString(saveCursor)
	for _, row := range rows {
		b.WriteString("\r\n")
		b.WriteString(row)
	}
	b.WriteString(restoreCursor)

	_, err := io.WriteString(r.out, b.String())
	return err
}

// eraseGrid clears a previously drawn grid of n rows, walking down one row at
// a time and erasing it, then restoring the cursor.
func (r *renderer) eraseGrid(n int) error {
	if n <= 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString(saveCursor)
	for range n {
		b.WriteString(cursorDown)
		b.WriteString(eraseWholeRow)
	}
	b.WriteString(restoreCursor)

	_, err := io.WriteString(r.out, b.String())
	return err
}

// promptWidth is the number of terminal columns the prompt occupies, with
// color/style escapes stripped first.
func promptWidth(prompt string) int {
	return runewidth.StringWidth(ansiStyle.ReplaceAllString(prompt, ""))
}
