// Package fuzzy finds declared labels close to a mistyped token
// Used by argparse to attach "Did you mean" hints to unrecognized flags
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

// Matcher ranks candidate labels by edit distance to an input token
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher accepting candidates up to maxDistance edits away
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // Don't suggest for very short inputs
	}
}

// Match is a candidate within the distance limit
type Match struct {
	Label    string // candidate as given, prefix included
	Distance int
	Prefix   int // length of the common prefix, in runes
}

// Matches returns every candidate within the distance limit, best first.
// Flag prefixes ("--", "-") are ignored on both sides and comparison is
// case-insensitive. Exact matches are not suggestions and are skipped.
func (m *Matcher) Matches(input string, candidates []string) []Match {
	in := []rune(strings.ToLower(stripPrefix(input)))
	if len(in) < m.minLength {
		return nil
	}

	var matches []Match
	for _, candidate := range candidates {
		c := []rune(strings.ToLower(stripPrefix(candidate)))
		if string(c) == string(in) {
			continue
		}
		d := m.distance(in, c)
		if d > m.maxDistance {
			continue
		}
		matches = append(matches, Match{Label: candidate, Distance: d, Prefix: commonPrefix(in, c)})
	}

	// Closest first, longer shared prefix breaks ties, then declaration order
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Prefix > matches[j].Prefix
	})
	return matches
}

// Best returns the best candidate or "" when nothing is close enough
func (m *Matcher) Best(input string, candidates []string) string {
	matches := m.Matches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Label
}

// distance is the Levenshtein distance; anything over maxDistance is reported as maxDistance+1
func (m *Matcher) distance(a, b []rune) int {
	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}
	d := levenshtein.Distance(string(a), string(b), nil)
	if d > m.maxDistance {
		return m.maxDistance + 1
	}
	return d
}

func commonPrefix(a, b []rune) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func stripPrefix(s string) string {
	if strings.HasPrefix(s, "--") {
		return s[2:]
	}
	return strings.TrimPrefix(s, "-")
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// SuggestLabel returns the declared label closest to token, or ""
func SuggestLabel(token string, labels []string, maxDistance int) string {
	return NewMatcher(maxDistance).Best(token, labels)
}
