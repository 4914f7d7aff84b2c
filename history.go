package ask

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// History is the navigation protocol the prompt loop drives with the up and
// down arrows. Positions run over the stored entries, oldest first, plus one
// past-end slot meaning "not browsing history". Prev moves toward older
// entries and must not be called at the start; Next moves back toward the
// past-end slot. Push appends an accepted line and Reset returns the cursor to
// past-end; the loop calls them as a pair on submission.
//
// Ring is the provided implementation; anything satisfying this interface can
// back the prompt instead.
type History interface {
	Prev() string
	Next() string
	Push(entry string)
	Reset()
	AtStart() bool
	AtEnd() bool
	AtPenultimate() bool
	PastEnd() bool
}

// Saver is implemented by histories that persist themselves. Prompt.Close
// calls Save when the configured History implements it.
type Saver interface {
	Save() error
}

const (
	defaultMaxEntries  = 1000
	defaultMaxFileSize = 1024 * 1024 // rotate the history file past 1MB
	defaultMaxBackups  = 3
)

// Ring is a bounded command history with an optional file backing. The
// traversal cursor points at the entry currently shown; len(entries) is the
// past-end slot.
type Ring struct {
	entries []string
	cursor  int
	max     int

	file        string
	maxFileSize int64
	maxBackups  int
}

// NewRing returns an in-memory history keeping at most maxEntries entries
// (a default cap applies when maxEntries <= 0).
func NewRing(maxEntries int) *Ring {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &Ring{max: maxEntries}
}

// NewFileRing returns a history persisted to file, loading any existing
// entries. The path may be absolute, relative, or ~-prefixed.
func NewFileRing(file string, maxEntries int) (*Ring, error) {
	path, err := expandPath(file)
	if err != nil {
		return nil, err
	}
	r := NewRing(maxEntries)
	r.file = path
	r.maxFileSize = defaultMaxFileSize
	r.maxBackups = defaultMaxBackups
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Prev moves toward older entries and returns the entry at the new position.
func (r *Ring) Prev() string {
	if r.cursor > 0 {
		r.cursor--
	}
	if r.cursor >= len(r.entries) {
		return ""
	}
	return r.entries[r.cursor]
}

// Next moves toward the past-end slot and returns the entry at the new
// position, or "" once past the newest entry.
func (r *Ring) Next() string {
	if r.cursor < len(r.entries) {
		r.cursor++
	}
	if r.cursor >= len(r.entries) {
		return ""
	}
	return r.entries[r.cursor]
}

// Push appends an entry, collapsing consecutive duplicates and trimming to
// the entry cap. Empty entries are ignored.
func (r *Ring) Push(entry string) {
	if entry == "" {
		return
	}
	if n := len(r.entries); n > 0 && r.entries[n-1] == entry {
		return
	}
	r.entries = append(r.entries, entry)
	if len(r.entries) > r.max {
		r.entries = r.entries[len(r.entries)-r.max:]
	}
}

// Reset returns the cursor to the past-end slot.
func (r *Ring) Reset() {
	r.cursor = len(r.entries)
}

// AtStart reports whether the oldest entry is shown (Prev is illegal here).
func (r *Ring) AtStart() bool {
	return r.cursor <= 0
}

// AtEnd reports whether the cursor sits on the past-end slot.
func (r *Ring) AtEnd() bool {
	return r.cursor == len(r.entries)
}

// AtPenultimate reports whether the newest entry is shown, so the next Next
// crosses back past the end.
func (r *Ring) AtPenultimate() bool {
	return len(r.entries) > 0 && r.cursor == len(r.entries)-1
}

// PastEnd reports whether history is not being browsed.
func (r *Ring) PastEnd() bool {
	return r.cursor >= len(r.entries)
}

// Entries returns a copy of the stored entries, oldest first.
func (r *Ring) Entries() []string {
	return append([]string{}, r.entries...)
}

// load reads the backing file, one entry per line. A missing file is fine.
func (r *Ring) load() error {
	if r.file == "" {
		return nil
	}
	f, err := os.Open(r.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if entry := strings.TrimSpace(scanner.Text()); entry != "" {
			r.entries = append(r.entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	if len(r.entries) > r.max {
		r.entries = r.entries[len(r.entries)-r.max:]
	}
	r.cursor = len(r.entries)
	return nil
}

// Save writes the entries to the backing file, rotating it first when it has
// grown past the size limit. A memory-only Ring saves to nowhere.
func (r *Ring) Save() error {
	if r.file == "" {
		return nil
	}
	if err := r.rotateIfNeeded(); err != nil {
		return fmt.Errorf("failed to rotate history file: %w", err)
	}

	if dir := filepath.Dir(r.file); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	f, err := os.Create(r.file)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer f.Close()

	for _, entry := range r.entries {
		if _, err := fmt.Fprintln(f, entry); err != nil {
			return fmt.Errorf("failed to write history entry: %w", err)
		}
	}
	return nil
}

func (r *Ring) rotateIfNeeded() error {
	info, err := os.Stat(r.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() < r.maxFileSize {
		return nil
	}

	if r.maxBackups <= 0 {
		return os.Truncate(r.file, 0)
	}

	// Drop the oldest backup, shift the rest up one slot, then move the
	// current file into the .1 slot.
	oldest := r.file + "." + strconv.Itoa(r.maxBackups)
	if _, err := os.Stat(oldest); err == nil {
		if err := os.Remove(oldest); err != nil {
			return fmt.Errorf("failed to remove oldest backup: %w", err)
		}
	}
	for i := r.maxBackups - 1; i >= 1; i-- {
		from := r.file + "." + strconv.Itoa(i)
		to := r.file + "." + strconv.Itoa(i+1)
		if _, err := os.Stat(from); err == nil {
			if err := os.Rename(from, to); err != nil {
				return fmt.Errorf("failed to rotate backup %d: %w", i, err)
			}
		}
	}
	if err := os.Rename(r.file, r.file+".1"); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	// Keep the newer half in memory so the fresh file does not rotate again
	// immediately.
	keep := len(r.entries) / 2
	if keep < 100 {
		keep = len(r.entries)
	}
	r.entries = r.entries[len(r.entries)-keep:]
	r.cursor = len(r.entries)
	return nil
}

// expandPath resolves ~-prefixed and relative history paths to absolute ones.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}
	return abs, nil
}
