package matcher

import (
	"unicode"

	"github.com/tasklens/tasklens-mcp/pkg/types"
)

// Score multipliers for individual term matches. Exact (quoted) terms are
// worth double a plain substring hit; a term that the field starts with
// earns the prefix bonus instead of the base multiplier.
const (
	exactMultiplier  = 2.0
	prefixMultiplier = 1.5
	baseMultiplier   = 1.0
)

// Match holds the outcome of matching a single field against a query
type Match struct {
	Score      float64
	Highlights []types.SearchHighlight
}

// MatchField decides whether one text field matches the query, computing a
// partial score and highlight spans. The second return value is false when
// the field does not match: a negated term was found, or no non-negated
// term occurred.
//
// Matching is case-insensitive. The working copy is lowercased one rune at
// a time so its indices stay aligned with the original text; highlight
// offsets are therefore rune counts into the original-cased field.
func MatchField(text string, query types.SearchQuery, weight float64, fieldName string) (Match, bool) {
	if text == "" || query.IsEmpty() {
		return Match{}, false
	}

	original := []rune(text)
	lowered := lowerRunes(original)

	var m Match
	matched := 0

	for _, term := range query.Terms {
		needle := lowerRunes([]rune(term.Text))

		if term.Exact {
			// Exact term: first occurrence only.
			idx := indexRunes(lowered, needle, 0)
			if idx < 0 {
				continue
			}
			if term.Negated {
				// Negation short-circuits the whole field, regardless
				// of operator.
				return Match{}, false
			}
			m.Score += weight * exactMultiplier
			m.Highlights = append(m.Highlights, newHighlight(original, fieldName, idx, len(needle)))
			matched++
			continue
		}

		// Substring term: every non-overlapping occurrence, found with a
		// forward-advancing cursor so pathological fields stay O(n).
		occurrences := findAll(lowered, needle)
		if len(occurrences) == 0 {
			continue
		}
		if term.Negated {
			return Match{}, false
		}
		for _, idx := range occurrences {
			m.Highlights = append(m.Highlights, newHighlight(original, fieldName, idx, len(needle)))
		}
		// Score accrues once per term no matter how many occurrences; only
		// the highlights track them all.
		if occurrences[0] == 0 {
			m.Score += weight * prefixMultiplier
		} else {
			m.Score += weight * baseMultiplier
		}
		matched++
	}

	// Under both operators a field matches once at least one non-negated
	// term occurred: the boolean operator is evaluated per field, not
	// across the whole item.
	if matched == 0 {
		return Match{}, false
	}

	return m, true
}

// findAll returns the start index of every non-overlapping occurrence of
// needle in haystack, scanning forward past each match.
func findAll(haystack, needle []rune) []int {
	var occurrences []int
	for cursor := 0; ; {
		idx := indexRunes(haystack, needle, cursor)
		if idx < 0 {
			break
		}
		occurrences = append(occurrences, idx)
		cursor = idx + len(needle)
	}
	return occurrences
}

// indexRunes returns the index of the first occurrence of needle in
// haystack at or after from, or -1 if absent
func indexRunes(haystack, needle []rune, from int) int {
	if len(needle) == 0 || from < 0 {
		return -1
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		if haystack[i] != needle[0] {
			continue
		}
		if equalRunes(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func equalRunes(a, b []rune) bool {
	for i := range b {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// lowerRunes lowercases per rune, preserving a 1:1 index mapping with the
// input. Full case folding could change rune counts and is avoided.
func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

// newHighlight records a span against the original-cased text
func newHighlight(original []rune, fieldName string, offset, length int) types.SearchHighlight {
	return types.SearchHighlight{
		FieldName:   fieldName,
		Offset:      offset,
		Length:      length,
		MatchedText: string(original[offset : offset+length]),
	}
}
