package ask

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PrefixSearch returns a Search that matches candidates sharing the term as a
// prefix, in the order given. An empty term matches every candidate.
func PrefixSearch(candidates []string) Search {
	return func(term string) []string {
		var results []string
		for _, c := range candidates {
			if strings.HasPrefix(c, term) {
				results = append(results, c)
			}
		}
		return results
	}
}

// FuzzySearch returns a Search that ranks candidates by match quality: exact
// matches first, then prefix, substring, and character-subsequence matches.
// Matching is case-insensitive.
func FuzzySearch(candidates []string) Search {
	return func(term string) []string {
		if term == "" {
			return append([]string{}, candidates...)
		}
		type match struct {
			text  string
			score int
		}
		var matches []match
		lower := strings.ToLower(term)
		for _, c := range candidates {
			if score := fuzzyScore(lower, strings.ToLower(c)); score > 0 {
				matches = append(matches, match{text: c, score: score})
			}
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].score > matches[j].score
		})
		results := make([]string, len(matches))
		for i, m := range matches {
			results[i] = m.text
		}
		return results
	}
}

// fuzzyScore rates how well term matches candidate. Zero means no match.
func fuzzyScore(term, candidate string) int {
	if term == "" {
		return 1
	}
	if candidate == "" {
		return 0
	}
	if term == candidate {
		return 1000
	}
	if strings.HasPrefix(candidate, term) {
		return 800 + len(term)*10
	}
	if strings.Contains(candidate, term) {
		return 500 + len(term)*5
	}

	// Subsequence scan: every term character found in order earns points.
	score := 0
	idx := 0
	for _, tc := range term {
		for idx < len(candidate) {
			if rune(candidate[idx]) == tc {
				score += 10
				idx++
				break
			}
			idx++
		}
		if idx >= len(candidate) {
			break
		}
	}
	return score
}

// FileSearch returns a Search that completes file and directory paths under
// the current directory. Directories gain a trailing separator so a further
// trigger press descends into them. Hidden entries match only when the term
// itself starts with a dot.
func FileSearch() Search {
	return func(term string) []string {
		dir := filepath.Dir(term)
		base := filepath.Base(term)
		if term == "" {
			dir, base = ".", ""
		}
		if strings.HasSuffix(term, "/") {
			dir, base = term, ""
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil
		}

		results := make([]string, 0, len(entries))
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
				continue
			}
			if base != "" && !strings.HasPrefix(name, base) {
				continue
			}
			full := filepath.Join(dir, name)
			if dir == "." && !strings.HasPrefix(term, "./") {
				full = name
			}
			if entry.IsDir() {
				full += "/"
			}
			results = append(results, full)
		}
		return results
	}
}
