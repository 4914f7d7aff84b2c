// Package ask provides a synchronous, blocking prompt reader for interactive
// terminals.
//
// A Prompt displays a prompt string, puts the terminal into raw mode, and
// reads keystrokes until the user submits the line with Enter, interrupts
// with Ctrl-C, or signals end of input with Ctrl-D. While reading it supports
// in-place editing (cursor movement, insertion, backspace), history
// navigation on the arrow keys, masked password-style input, and pluggable
// autocomplete.
//
// Quick start:
//
//	p, err := ask.New("> ")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	input, err := p.Ask()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("you entered: %s\n", input)
//
// History:
//
// Attach any History implementation; Ring is the provided one, in-memory or
// file-backed. Accepted lines are pushed automatically (unless the prompt is
// masked), and the up/down arrows browse past entries. The input that was in
// progress when browsing began is restored when browsing steps back past the
// newest entry.
//
//	hist, err := ask.WithFileHistory("~/.myapp_history", 500)
//	if err != nil {
//		log.Fatal(err)
//	}
//	p, err := ask.New("> ", hist)
//
// Autocomplete:
//
// A Search function maps the input term to candidates; the engine drives it
// in one of two modes. BehaviorCycle replaces the line with successive
// candidates on repeated Tab presses, searching with the term as it was when
// cycling started. BehaviorSuggest prints a column-aligned grid of candidates
// below the line without touching the input, re-querying on every press.
//
//	p, err := ask.New("> ", ask.WithAutocomplete(ask.Autocomplete{
//		Search:   ask.FuzzySearch([]string{"status", "stash", "stage"}),
//		Behavior: ask.BehaviorSuggest,
//	}))
//
// Masked input:
//
//	p, err := ask.New("password: ", ask.WithMask('*'))
//
// Exit behavior:
//
// By default Ctrl-C returns ("", ErrInterrupted) with the terminal restored.
// WithSIGINT(true) exits the process with status 130 instead, and
// WithEOT(true) makes Ctrl-D on an empty line print "exit" and exit with
// status 0, shell style.
//
// The terminal is restored on every exit path. Prompts are not safe for
// concurrent use; one invocation owns the terminal for its duration.
package ask
