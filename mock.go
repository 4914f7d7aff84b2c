package ask

import "io"

// scriptedDevice implements device over a fixed byte script, for deterministic
// tests without a terminal. Reads return up to len(buf) bytes per call the way
// a raw tty delivers chunks; chunk boundaries in the script are marked so
// escape sequences arrive as one 3-byte read like they do from a real device.
type scriptedDevice struct {
	chunks  [][]byte
	pos     int
	rawMode bool
	width   int
	height  int
}

// newScriptedDevice builds a device replaying the given chunks in order.
// Use one chunk per simulated read: single bytes for plain keys, 3-byte
// chunks for escape sequences or pasted runs.
func newScriptedDevice(chunks ...[]byte) *scriptedDevice {
	return &scriptedDevice{
		chunks: chunks,
		width:  80,
		height: 24,
	}
}

// script is a convenience for building chunk lists from strings: each
// multi-byte string becomes one read, each 1-byte string one keystroke.
func script(keys ...string) [][]byte {
	chunks := make([][]byte, len(keys))
	for i, k := range keys {
		chunks[i] = []byte(k)
	}
	return chunks
}

// typed expands a string into one single-byte chunk per character, simulating
// a user typing it out.
func typed(text string) [][]byte {
	chunks := make([][]byte, 0, len(text))
	for i := range len(text) {
		chunks = append(chunks, []byte{text[i]})
	}
	return chunks
}

func (d *scriptedDevice) SetRaw() error {
	d.rawMode = true
	return nil
}

func (d *scriptedDevice) Restore() error {
	d.rawMode = false
	return nil
}

func (d *scriptedDevice) Read(buf []byte) (int, error) {
	if d.pos >= len(d.chunks) {
		return 0, io.EOF
	}
	n := copy(buf, d.chunks[d.pos])
	d.pos++
	return n, nil
}

func (d *scriptedDevice) Size() (width, height int, err error) {
	return d.width, d.height, nil
}

func (d *scriptedDevice) Close() error {
	return nil
}
