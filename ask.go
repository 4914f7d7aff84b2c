package ask

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInterrupted is returned when the user presses Ctrl-C and the prompt is
// not configured to exit the process.
var ErrInterrupted = errors.New("interrupted")

// Config holds the settings one prompt invocation runs with. It is assembled
// by New from Options and is valid by construction when the loop starts.
type Config struct {
	Default      string        // returned when input is submitted empty
	Mask         rune          // echo substitute; 0 echoes input as typed
	SIGINT       bool          // exit the process with status 130 on Ctrl-C
	EOT          bool          // exit the process with status 0 on Ctrl-D at empty input
	History      History       // history store, nil disables history navigation
	Autocomplete *Autocomplete // completion engine config, nil disables it
}

// Option configures a prompt.
type Option func(*Config)

// WithDefault sets the value returned when the user submits an empty line.
func WithDefault(value string) Option {
	return func(c *Config) {
		c.Default = value
	}
}

// WithMask makes the prompt echo mask instead of the typed characters,
// password style. Masked input is never pushed to history.
func WithMask(mask rune) Option {
	return func(c *Config) {
		c.Mask = mask
	}
}

// WithSIGINT makes Ctrl-C terminate the process with status 130 instead of
// returning ErrInterrupted.
func WithSIGINT(enabled bool) Option {
	return func(c *Config) {
		c.SIGINT = enabled
	}
}

// WithEOT makes Ctrl-D on an empty line print "exit" and terminate the
// process with status 0. Ctrl-D on a non-empty line is always a no-op.
func WithEOT(enabled bool) Option {
	return func(c *Config) {
		c.EOT = enabled
	}
}

// WithHistory attaches a history store navigated with the up and down arrows.
//
// Example:
//
//	p, err := ask.New("> ", ask.WithHistory(ask.NewRing(100)))
func WithHistory(h History) Option {
	return func(c *Config) {
		c.History = h
	}
}

// WithFileHistory attaches a file-persisted history. The file is loaded
// eagerly, so the returned error surfaces before any prompt runs.
func WithFileHistory(file string, maxEntries int) (Option, error) {
	ring, err := NewFileRing(file, maxEntries)
	if err != nil {
		return nil, err
	}
	return WithHistory(ring), nil
}

// WithAutocomplete attaches a completion engine. The trigger key defaults to
// Tab.
//
// Example:
//
//	p, err := ask.New("> ", ask.WithAutocomplete(ask.Autocomplete{
//		Search:   ask.PrefixSearch([]string{"cat", "car", "cap"}),
//		Behavior: ask.BehaviorCycle,
//	}))
func WithAutocomplete(ac Autocomplete) Option {
	return func(c *Config) {
		c.Autocomplete = &ac
	}
}

// Prompt reads one line at a time from the terminal. A Prompt owns the
// terminal device exclusively while Ask runs; it is not safe for concurrent
// use. Close releases the device and persists history.
type Prompt struct {
	prompt string
	config Config
	out    io.Writer
	dev    device
	dec    decoder
	exit   func(code int)
}

// New creates a prompt displaying the given prompt string. It fails with
// ErrNotTerminal when stdin is not a terminal.
func New(prompt string, options ...Option) (*Prompt, error) {
	var config Config
	for _, option := range options {
		option(&config)
	}
	if config.Autocomplete != nil && config.Autocomplete.Trigger == 0 {
		config.Autocomplete.Trigger = '\t'
	}

	dev, err := newRealDevice()
	if err != nil {
		if errors.Is(err, ErrNotTerminal) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}

	p := &Prompt{
		prompt: prompt,
		config: config,
		out:    newOutput(),
		dev:    dev,
		exit:   os.Exit,
	}
	if config.Autocomplete != nil {
		p.dec.trigger = config.Autocomplete.Trigger
	}
	return p, nil
}

// Ask displays the prompt and blocks until the user submits a line with
// Enter, interrupts with Ctrl-C, or exits with Ctrl-D.
//
// It returns the entered text; the configured default when the input was
// empty; or "" with ErrInterrupted on Ctrl-C when SIGINT mode is off.
func (p *Prompt) Ask() (string, error) {
	return p.AskContext(context.Background())
}

// snapshot preserves the in-progress input when history browsing starts, so
// stepping back past the newest entry restores it exactly.
type snapshot struct {
	content string
	cursor  int
}

// AskContext is Ask with cancellation. The context is checked once per read
// cycle; a blocked read is only woken by the next keystroke.
func (p *Prompt) AskContext(ctx context.Context) (string, error) {
	if err := p.dev.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	restored := false
	defer func() {
		if !restored {
			if err := p.dev.Restore(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal: %v\n", err)
			}
		}
	}()

	r := newRenderer(p.out)
	ln := &line{}
	var comp *completer
	if p.config.Autocomplete != nil {
		comp = newCompleter(p.config.Autocomplete)
	}
	hist := p.config.History
	if hist != nil && !hist.PastEnd() {
		hist.Reset()
	}
	var saved snapshot

	if err := r.redraw(p.prompt, p.display(ln), ln.cursor); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	buf := make([]byte, 3)
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := p.dev.Read(buf)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if n == 0 {
			continue
		}
		k := p.dec.decode(buf[:n])

		// Any key but the trigger ends the autocomplete session: the frozen
		// cycle term is dropped and a visible suggestion grid erased before
		// the key takes its own effect.
		if comp != nil && k.kind != keyTrigger {
			if comp.rows > 0 {
				if err := r.eraseGrid(comp.rows); err != nil {
					return "", fmt.Errorf("failed to erase suggestions: %w", err)
				}
				comp.rows = 0
			}
			comp.reset()
		}

		switch k.kind {
		case keySubmit:
			fmt.Fprint(p.out, "\r\n")
			if err := p.dev.Restore(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal: %v\n", err)
			}
			restored = true
			text := ln.String()
			if hist != nil && text != "" && p.config.Mask == 0 {
				hist.Push(text)
				hist.Reset()
			}
			if text == "" {
				return p.config.Default, nil
			}
			return text, nil

		case keyInterrupt:
			fmt.Fprint(p.out, "^C\r\n")
			if err := p.dev.Restore(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal: %v\n", err)
			}
			restored = true
			if p.config.SIGINT {
				p.dev.Close()
				p.exit(130)
			}
			return "", ErrInterrupted

		case keyEOT:
			// Only meaningful on an empty line; otherwise swallowed.
			if ln.len() == 0 && p.config.EOT {
				fmt.Fprint(p.out, "exit\r\n")
				if err := p.dev.Restore(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal: %v\n", err)
				}
				restored = true
				p.dev.Close()
				p.exit(0)
				return "", nil
			}
			continue

		case keyUp:
			if hist == nil || p.config.Mask != 0 || hist.AtStart() {
				continue
			}
			if hist.PastEnd() {
				saved = snapshot{content: ln.String(), cursor: ln.cursor}
			}
			ln.set(hist.Prev())

		case keyDown:
			if hist == nil || p.config.Mask != 0 || hist.PastEnd() {
				continue
			}
			if hist.AtPenultimate() {
				// Crossing back past the newest entry resumes the input
				// that was in progress when browsing began.
				hist.Next()
				ln.set(saved.content)
				ln.cursor = saved.cursor
			} else {
				ln.set(hist.Next())
			}

		case keyLeft:
			if !ln.moveLeft() {
				continue
			}

		case keyRight:
			if !ln.moveRight() {
				continue
			}

		case keyBackspace:
			if !ln.backspace() {
				continue
			}

		case keyTrigger:
			switch comp.behavior {
			case BehaviorCycle:
				next, ok := comp.cycle(ln.String())
				if !ok {
					fmt.Fprint(p.out, noMatch)
					continue
				}
				ln.set(next)

			case BehaviorSuggest:
				if comp.rows > 0 {
					if err := r.eraseGrid(comp.rows); err != nil {
						return "", fmt.Errorf("failed to erase suggestions: %w", err)
					}
					comp.rows = 0
				}
				results := comp.suggest(ln.String())
				if len(results) == 0 {
					fmt.Fprint(p.out, noMatch)
					continue
				}
				width, _, _ := p.dev.Size()
				rows := layoutGrid(results, width)
				if err := r.drawGrid(rows); err != nil {
					return "", fmt.Errorf("failed to render suggestions: %w", err)
				}
				comp.rows = len(rows)
				continue

			case BehaviorHybrid:
				// Reserved behavior: selectable, currently does nothing.
				continue
			}

		case keyLiteral:
			ln.insert(k.text)

		case keyNone:
			continue
		}

		if err := r.redraw(p.prompt, p.display(ln), ln.cursor); err != nil {
			return "", fmt.Errorf("failed to render prompt: %w", err)
		}
	}
}

// display returns what the renderer should echo for the current line: the
// content itself, or one mask character per input byte. Cursor arithmetic is
// identical either way.
func (p *Prompt) display(ln *line) string {
	if p.config.Mask == 0 {
		return ln.String()
	}
	return strings.Repeat(string(p.config.Mask), ln.len())
}

// Close releases the terminal device and saves the history when the
// configured store supports it. Safe to call more than once.
func (p *Prompt) Close() error {
	if s, ok := p.config.History.(Saver); ok {
		if err := s.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save history: %v\n", err)
		}
	}
	if p.dev != nil {
		return p.dev.Close()
	}
	return nil
}
