package ask

// keyKind classifies one chunk of bytes read from the terminal device.
type keyKind int

const (
	keyNone keyKind = iota // ignored input, nothing to do
	keyLiteral             // printable text to insert at the cursor
	keyUp
	keyDown
	keyLeft
	keyRight
	keyBackspace
	keySubmit
	keyInterrupt // Ctrl-C
	keyEOT       // Ctrl-D
	keyTrigger   // configured autocomplete trigger byte
)

// key is the result of classifying a read chunk. text is set for keyLiteral.
type key struct {
	kind keyKind
	text []byte
}

// decoder classifies a chunk of up to 3 raw bytes. A full 3-byte read is
// checked against the arrow-key escape sequences; any other 3-byte chunk is
// literal input (terminals deliver multi-byte characters and fast pastes in
// one read), never dropped. Shorter reads are classified by their first byte.
type decoder struct {
	trigger byte // 0 when autocomplete is not configured
}

func (d decoder) decode(buf []byte) key {
	if len(buf) == 3 {
		if buf[0] == 0x1b && buf[1] == '[' {
			switch buf[2] {
			case 'A':
				return key{kind: keyUp}
			case 'B':
				return key{kind: keyDown}
			case 'C':
				return key{kind: keyRight}
			case 'D':
				return key{kind: keyLeft}
			}
		}
		text := make([]byte, 0, 3)
		for _, b := range buf {
			if b != 0 {
				text = append(text, b)
			}
		}
		return key{kind: keyLiteral, text: text}
	}

	switch b := buf[0]; {
	case b == 0x03:
		return key{kind: keyInterrupt}
	case b == 0x04:
		return key{kind: keyEOT}
	case b == '\r' || b == '\n':
		return key{kind: keySubmit}
	case b == 0x7f || b == '\b':
		return key{kind: keyBackspace}
	case d.trigger != 0 && b == d.trigger:
		return key{kind: keyTrigger}
	case b < 0x20 || b > 0x7e:
		return key{kind: keyNone}
	default:
		return key{kind: keyLiteral, text: []byte{b}}
	}
}
