package search

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// State is the in-directory search: the term and the listing indices that
// contain it, in listing order.
type State struct {
	Term    string
	Matches []int
	Current int // index into Matches, -1 when inactive
}

// New returns a cleared search state.
func New() State {
	return State{Current: -1}
}

// Active reports whether a search with at least one match is in progress.
func (s *State) Active() bool {
	return s.Term != "" && len(s.Matches) > 0
}

// Exit clears the search.
func (s *State) Exit() {
	s.Term = ""
	s.Matches = nil
	s.Current = -1
}

// Start replaces any previous search with term over names. It returns false
// when term is empty or nothing matches, leaving the state cleared.
func (s *State) Start(term string, names []string) bool {
	s.Exit()
	if term == "" {
		return false
	}

	results := SubstringMatchNames(term, names)
	if len(results) == 0 {
		return false
	}

	s.Term = term
	s.Matches = make([]int, len(results))
	for i, r := range results {
		s.Matches[i] = r.Index
	}
	s.Current = 0
	return true
}

// Navigate moves dir (+1 or -1) through the matches, wrapping at both ends,
// and returns the listing index of the new current match.
func (s *State) Navigate(dir int) (int, bool) {
	n := len(s.Matches)
	if n == 0 {
		return 0, false
	}
	s.Current = ((s.Current+dir)%n + n) % n
	return s.Matches[s.Current], true
}

// Selected returns the listing index of the current match.
func (s *State) Selected() (int, bool) {
	if !s.Active() || s.Current < 0 {
		return 0, false
	}
	return s.Matches[s.Current], true
}

// Status renders the status line, e.g. "/foo (2/5)".
func (s *State) Status() string {
	return fmt.Sprintf("/%s (%d/%d)", s.Term, s.Current+1, len(s.Matches))
}

// Matches reports whether name contains term, ignoring case.
func Matches(name, term string) bool {
	if term == "" {
		return false
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

// MatchResult holds a matching name's index and the rune positions that matched
type MatchResult struct {
	Index          int
	MatchedIndexes []int
}

// SubstringMatchNames performs case-insensitive substring matching on a list of names
// Returns the indices of matches and their matched character positions
func SubstringMatchNames(query string, names []string) []MatchResult {
	if query == "" {
		return nil
	}

	lowerQuery := []rune(strings.ToLower(query))
	var results []MatchResult

	for i, name := range names {
		lowerName := []rune(strings.ToLower(name))
		if idx := runeIndex(lowerName, lowerQuery); idx != -1 {
			matchedIndexes := make([]int, len(lowerQuery))
			for j := range lowerQuery {
				matchedIndexes[j] = idx + j
			}
			results = append(results, MatchResult{
				Index:          i,
				MatchedIndexes: matchedIndexes,
			})
		}
	}

	return results
}

func runeIndex(haystack, needle []rune) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		found := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				found = false
				break
			}
		}
		if found {
			return i
		}
	}
	return -1
}

// Suggest returns the best fuzzy match for term among names, used to hint
// at a likely typo when a substring search finds nothing.
func Suggest(term string, names []string) (string, bool) {
	if term == "" {
		return "", false
	}
	matches := fuzzy.Find(term, names)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}

// NotFoundMessage is shown when a search has no matches.
func NotFoundMessage(term string, names []string) string {
	msg := "Pattern not found: " + term
	if hint, ok := Suggest(term, names); ok {
		msg += fmt.Sprintf(" (closest: %s)", hint)
	}
	return msg
}
