//nolint:testpackage // using package name 'fuzzy' to access unexported fields for testing
package fuzzy

import "testing"

func TestMatcher_Best(t *testing.T) {
	matcher := NewMatcher(2)

	tests := []struct {
		name       string
		input      string
		candidates []string
		expected   string
	}{
		{
			name:       "exact match excluded",
			input:      "--help",
			candidates: []string{"--help", "--version", "--verbose"},
			expected:   "", // Exact matches are not suggestions
		},
		{
			name:       "simple typo",
			input:      "--hep",
			candidates: []string{"--help", "--version", "--verbose"},
			expected:   "--help",
		},
		{
			name:       "prefix ignored",
			input:      "-qiet",
			candidates: []string{"--quiet", "-q"},
			expected:   "--quiet",
		},
		{
			name:       "no good match",
			input:      "--xyz",
			candidates: []string{"--help", "--version", "--verbose"},
			expected:   "",
		},
		{
			name:       "too short",
			input:      "-x",
			candidates: []string{"--xx", "-y"},
			expected:   "",
		},
		{
			name:       "case insensitive",
			input:      "--NUMM",
			candidates: []string{"--num", "--name"},
			expected:   "--num",
		},
		{
			name:       "prefix breaks ties",
			input:      "--count",
			candidates: []string{"--mount", "--counts"},
			expected:   "--counts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matcher.Best(tt.input, tt.candidates)
			if result != tt.expected {
				t.Errorf("Best(%q, %v) = %q, want %q", tt.input, tt.candidates, result, tt.expected)
			}
		})
	}
}

func TestMatcher_MatchesOrdered(t *testing.T) {
	matcher := NewMatcher(2)
	matches := matcher.Matches("--transfrm", []string{"--trans", "--transform", "--format"})
	if len(matches) == 0 {
		t.Fatal("Expected at least one match")
	}
	if matches[0].Label != "--transform" {
		t.Errorf("Expected --transform first, got %q", matches[0].Label)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Distance > matches[i].Distance {
			t.Errorf("Matches not sorted by distance: %v", matches)
		}
	}
}

func TestMatcher_Distance(t *testing.T) {
	matcher := NewMatcher(10)

	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "ab", 1},
		{"abc", "axc", 1},
		{"kitten", "sitting", 3},
		{"größe", "grösse", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := matcher.distance([]rune(tt.a), []rune(tt.b))
			if result != tt.expected {
				t.Errorf("distance(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestMatcher_EarlyTermination(t *testing.T) {
	matcher := NewMatcher(2)
	if d := matcher.distance([]rune("short"), []rune("verylongstring")); d <= 2 {
		t.Errorf("Expected distance > 2 for very different strings, got %d", d)
	}
}

func TestSuggestLabel(t *testing.T) {
	if got := SuggestLabel("--quite", []string{"--quiet", "-q", "text"}, 2); got != "--quiet" {
		t.Errorf("SuggestLabel = %q, want --quiet", got)
	}
}
