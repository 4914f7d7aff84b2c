package ask

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutGrid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		items     []string
		termWidth int
		want      []string
	}{
		{
			name:      "empty",
			items:     nil,
			termWidth: 80,
			want:      nil,
		},
		{
			name:      "single row",
			items:     []string{"cat", "car", "cap"},
			termWidth: 80,
			want:      []string{"cat  car  cap"},
		},
		{
			name:      "wraps to rows",
			items:     []string{"aa", "bbb", "c"},
			termWidth: 10,
			want:      []string{"aa   bbb", "c"},
		},
		{
			name:      "narrow terminal forces one column",
			items:     []string{"longword", "x"},
			termWidth: 4,
			want:      []string{"longword", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, layoutGrid(tt.items, tt.termWidth))
		})
	}
}

func TestLayoutGridCellsAligned(t *testing.T) {
	t.Parallel()

	rows := layoutGrid([]string{"a", "bb", "ccc", "dddd"}, 20)
	// Widest item is 4, gutter 2: three 6-wide columns fit in 20.
	assert.Len(t, rows, 2)
	assert.Equal(t, "a     bb    ccc", rows[0])
	assert.Equal(t, "dddd", rows[1])

	for _, row := range rows {
		assert.False(t, strings.HasSuffix(row, " "), "rows must not carry trailing padding")
	}
}
