package ask

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// gridGutter is the minimum spacing between grid columns.
const gridGutter = 2

// layoutGrid arranges items into rows of fixed-width columns that fit within
// termWidth. Every cell is padded to the widest item so columns line up;
// items are laid out row-major. The row count is what the caller needs to
// erase the grid later.
func layoutGrid(items []string, termWidth int) []string {
	if len(items) == 0 {
		return nil
	}

	cell := 0
	for _, item := range items {
		if w := runewidth.StringWidth(item); w > cell {
			cell = w
		}
	}
	cell += gridGutter

	cols := termWidth / cell
	if cols < 1 {
		cols = 1
	}

	rowCount := (len(items) + cols - 1) / cols
	rows := make([]string, 0, rowCount)
	for r := range rowCount {
		var b strings.Builder
		for c := range cols {
			i := r*cols + c
			if i >= len(items) {
				break
			}
			b.WriteString(runewidth.FillRight(items[i], cell))
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}
	return rows
}
