package ask

import (
	"errors"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by New when stdin is not attached to a terminal,
// since raw keystroke input needs a real device.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// device abstracts the terminal so the prompt loop can run against either the
// real tty or a scripted stand-in in tests.
//
//   - realDevice reads from the tty via go-tty and flips raw mode with
//     golang.org/x/term
//   - scriptedDevice replays a fixed byte sequence
type device interface {
	SetRaw() error                        // enter raw mode, capturing prior state
	Restore() error                       // restore the captured state
	Read(buf []byte) (int, error)         // blocking read of up to len(buf) bytes
	Size() (width, height int, err error) // terminal dimensions with safe fallbacks
	Close() error                         // release the device, safe to call twice
}

// realDevice drives the actual terminal. Raw-mode state is captured on each
// SetRaw so Restore always has a fresh baseline, and Close is guarded against
// the Windows double-close panic.
type realDevice struct {
	tty    *tty.TTY
	inFd   int
	saved  *term.State
	closed bool
}

func newRealDevice() (*realDevice, error) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil, ErrNotTerminal
	}

	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realDevice{
		tty:  t,
		inFd: int(t.Input().Fd()),
	}, nil
}

// newOutput returns the writer prompt output goes to, wrapping stdout so ANSI
// escapes work on Windows consoles too.
func newOutput() io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

func (d *realDevice) SetRaw() error {
	if !term.IsTerminal(d.inFd) {
		return nil
	}
	state, err := term.GetState(d.inFd)
	if err != nil {
		return err
	}
	d.saved = state
	if _, err := term.MakeRaw(d.inFd); err != nil {
		return err
	}
	return nil
}

func (d *realDevice) Restore() error {
	if d.saved == nil || !term.IsTerminal(d.inFd) {
		return nil
	}
	err := term.Restore(d.inFd, d.saved)
	d.saved = nil
	return err
}

func (d *realDevice) Read(buf []byte) (int, error) {
	return d.tty.Input().Read(buf)
}

func (d *realDevice) Size() (width, height int, err error) {
	w, h, err := d.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Fall back to a classic 80x24 rather than risk zero-width layout.
		return 80, 24, err
	}
	return w, h, nil
}

func (d *realDevice) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if d.tty != nil {
		return d.tty.Close()
	}
	return nil
}
