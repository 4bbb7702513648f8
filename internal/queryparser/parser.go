package queryparser

import (
	"strings"
	"unicode"

	"github.com/tasklens/tasklens-mcp/pkg/types"
)

// Operator and negation keywords recognized outside quotes, compared
// case-insensitively at token boundaries.
const (
	keywordAnd = "AND"
	keywordOr  = "OR"
	keywordNot = "NOT"
)

// Parse converts a raw query string into a structured SearchQuery.
//
// Parsing is total: any input, including an empty string or one consisting
// only of operator keywords, yields a valid query. A query with no terms
// matches nothing downstream.
//
// Grammar, in one character scan:
//   - `"` toggles quote mode; quoted runs become exact terms.
//   - Outside quotes, whitespace separates tokens.
//   - AND / OR (case-insensitive) set the single query-wide operator and are
//     never emitted as terms.
//   - NOT negates the next emitted term.
//   - An unterminated quote is closed at end of input.
func Parse(raw string) types.SearchQuery {
	var (
		terms    []types.SearchTerm
		buf      []rune
		inQuotes bool
		negated  bool
		operator = types.OperatorAnd
	)

	// flushTerm emits the accumulator as a term carrying the pending
	// negation flag, then clears both. Empty accumulators emit nothing.
	flushTerm := func(exact bool) {
		if len(buf) == 0 {
			return
		}
		terms = append(terms, types.SearchTerm{
			Text:    string(buf),
			Exact:   exact,
			Negated: negated,
		})
		buf = buf[:0]
		negated = false
	}

	// flushToken handles a token boundary outside quotes: operator and
	// negation keywords adjust parser state instead of becoming terms.
	flushToken := func() {
		switch {
		case len(buf) == 0:
		case strings.EqualFold(string(buf), keywordAnd):
			operator = types.OperatorAnd
			buf = buf[:0]
		case strings.EqualFold(string(buf), keywordOr):
			operator = types.OperatorOr
			buf = buf[:0]
		case strings.EqualFold(string(buf), keywordNot):
			negated = true
			buf = buf[:0]
		default:
			flushTerm(false)
		}
	}

	for _, r := range raw {
		switch {
		case r == '"':
			if inQuotes {
				flushTerm(true)
			} else {
				// Opening a quote mid-token: the accumulated run is a
				// plain term, no keyword handling.
				flushTerm(false)
			}
			inQuotes = !inQuotes
		case !inQuotes && unicode.IsSpace(r):
			flushToken()
		default:
			buf = append(buf, r)
		}
	}

	// End of input. Inside an unterminated quote the remainder is an exact
	// term; otherwise the final token goes through the same keyword
	// handling as a whitespace boundary, so a trailing "AND" adjusts the
	// operator rather than becoming a term.
	if inQuotes {
		flushTerm(true)
	} else {
		flushToken()
	}

	return types.SearchQuery{Terms: terms, Operator: operator}
}
