package ask

// Search produces completion candidates for an input term. Implementations
// must be pure with respect to the prompt: the engine may call them on every
// trigger press. PrefixSearch, FuzzySearch and FileSearch are ready-made
// implementations.
type Search func(term string) []string

// Behavior selects how the autocomplete engine reacts to the trigger key.
type Behavior int

const (
	// BehaviorCycle replaces the line with successive candidates on repeated
	// trigger presses, searching with the term frozen at session start.
	BehaviorCycle Behavior = iota
	// BehaviorSuggest displays a non-destructive grid of candidates below the
	// line, re-querying with the live input on every trigger press.
	BehaviorSuggest
	// BehaviorHybrid is reserved. Selecting it is valid and does nothing.
	BehaviorHybrid
)

func (b Behavior) String() string {
	switch b {
	case BehaviorCycle:
		return "cycle"
	case BehaviorSuggest:
		return "suggest"
	case BehaviorHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// Autocomplete configures the completion engine for a prompt.
type Autocomplete struct {
	Search   Search   // candidate source, required
	Trigger  byte     // activating byte, '\t' when zero
	Behavior Behavior // cycle, suggest, or hybrid
}

// noMatch is written to the terminal when a search returns no candidates.
// A literal tab, not a bell: it nudges the cursor without any noise.
const noMatch = "\t"

// completer holds one autocomplete session: the search term frozen at the
// first trigger press of a cycle, the wrapping candidate index, and the number
// of rows the last suggestion grid occupies. Any non-trigger key ends the
// session via reset.
type completer struct {
	search   Search
	behavior Behavior

	frozen string
	active bool
	index  int
	rows   int
}

func newCompleter(ac *Autocomplete) *completer {
	return &completer{search: ac.Search, behavior: ac.Behavior}
}

// cycle returns the next candidate for the session, freezing the search term
// on first use. ok is false when the frozen term has no matches, in which case
// no session state changes.
func (c *completer) cycle(current string) (string, bool) {
	term := c.frozen
	if !c.active {
		term = current
	}
	results := c.search(term)
	if len(results) == 0 {
		return "", false
	}
	if !c.active {
		c.frozen = term
		c.active = true
		c.index = 0
	}
	pick := results[c.index%len(results)]
	c.index++
	return pick, true
}

// suggest queries with the live input. Unlike cycle, every keystroke between
// trigger presses changes the candidate set.
func (c *completer) suggest(current string) []string {
	return c.search(current)
}

// reset clears the frozen term and cycle position. The caller erases any
// visible grid and zeroes rows itself, since erasing needs the renderer.
func (c *completer) reset() {
	c.frozen = ""
	c.active = false
	c.index = 0
}
