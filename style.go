package ask

import (
	"fmt"
	"strings"
)

// Color is an RGB color with optional bold, for styling prompt strings. The
// renderer strips the resulting escape codes when measuring the prompt, so a
// styled prompt keeps the cursor arithmetic intact.
type Color struct {
	R, G, B uint8
	Bold    bool
}

// Handy prompt colors.
var (
	Green  = Color{G: 200}
	Cyan   = Color{G: 180, B: 200}
	Yellow = Color{R: 220, G: 180}
	Red    = Color{R: 220, G: 60, B: 60}
)

// ToANSI converts the color to an SGR escape sequence.
func (c Color) ToANSI() string {
	var codes []string
	if c.Bold {
		codes = append(codes, "1")
	}
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Sprint wraps text in the color's escape sequence and a reset.
func (c Color) Sprint(text string) string {
	return c.ToANSI() + text + Reset()
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
