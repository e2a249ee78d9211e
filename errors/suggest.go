package errors

import (
	"cmp"
	"slices"
	"strings"
)

// MaxSuggestionDistance is the maximum edit distance for a suggestion to be considered.
const MaxSuggestionDistance = 3

// MaxSuggestions is the maximum number of suggestions to return.
const MaxSuggestions = 3

// Suggestion represents a suggested correction with its edit distance.
type Suggestion struct {
	Value    string
	Distance int
}

// SuggestSimilar is SuggestWithin with a threshold scaled to the length of
// target: one edit up to three characters, two up to five, and
// MaxSuggestionDistance beyond that.
func SuggestSimilar(target string, candidates []string) []Suggestion {
	threshold := MaxSuggestionDistance
	switch n := len(target); {
	case n <= 3:
		threshold = 1
	case n <= 5:
		threshold = 2
	}
	return SuggestWithin(target, candidates, threshold)
}

// SuggestWithin returns up to MaxSuggestions candidates whose case-insensitive
// edit distance to target is at most threshold, closest first and then
// alphabetically. Exact matches are never suggested.
func SuggestWithin(target string, candidates []string, threshold int) []Suggestion {
	if target == "" {
		return nil
	}
	target = strings.ToLower(target)

	var suggestions []Suggestion
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if candidate == "" || lower == target {
			continue
		}
		if dist := editDistance(target, lower); dist <= threshold {
			suggestions = append(suggestions, Suggestion{Value: candidate, Distance: dist})
		}
	}
	slices.SortFunc(suggestions, func(a, b Suggestion) int {
		return cmp.Or(cmp.Compare(a.Distance, b.Distance), strings.Compare(a.Value, b.Value))
	})
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

// FormatSuggestions renders suggestions as a hint line, or "" when there are
// none.
func FormatSuggestions(suggestions []Suggestion) string {
	switch len(suggestions) {
	case 0:
		return ""
	case 1:
		return "did you mean '" + suggestions[0].Value + "'?"
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = "'" + s.Value + "'"
	}
	return "similar options: " + strings.Join(quoted, ", ")
}

// editDistance is the Levenshtein distance between a and b counted in runes.
// It keeps a single row of the distance table.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			above := row[j]
			if ra[i-1] == rb[j-1] {
				row[j] = diag
			} else {
				row[j] = 1 + min(diag, above, row[j-1])
			}
			diag = above
		}
	}
	return row[len(rb)]
}
