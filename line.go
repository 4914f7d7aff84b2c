package ask

// line holds the input text being edited and the insertion cursor.
// The cursor is a byte offset and always satisfies 0 <= cursor <= len(content).
// Only the prompt loop mutates a line, one classified key at a time.
type line struct {
	content []byte
	cursor  int
}

// insert splices text into the content at the cursor and advances the cursor
// past it.
func (l *line) insert(text []byte) {
	if len(text) == 0 {
		return
	}
	rest := append([]byte{}, l.content[l.cursor:]...)
	l.content = append(l.content[:l.cursor], append(text, rest...)...)
	l.cursor += len(text)
}

// backspace removes the byte immediately before the cursor. It reports whether
// anything changed; at cursor 0 it is a no-op.
func (l *line) backspace() bool {
	if l.cursor == 0 {
		return false
	}
	l.content = append(l.content[:l.cursor-1], l.content[l.cursor:]...)
	l.cursor--
	return true
}

// moveLeft and moveRight clamp the cursor to [0, len(content)] and report
// whether the position actually changed, so callers repaint only on movement.

func (l *line) moveLeft() bool {
	if l.cursor == 0 {
		return false
	}
	l.cursor--
	return true
}

func (l *line) moveRight() bool {
	if l.cursor >= len(l.content) {
		return false
	}
	l.cursor++
	return true
}

// set replaces the whole content and puts the cursor at end-of-line.
func (l *line) set(text string) {
	l.content = []byte(text)
	l.cursor = len(l.content)
}

func (l *line) len() int {
	return len(l.content)
}

func (l *line) String() string {
	return string(l.content)
}
