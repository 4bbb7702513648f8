package types

// Operator is the boolean operator applied across all terms of a query.
// A query carries exactly one operator; there is no per-pair grouping.
type Operator string

const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
)

// SearchTerm is a single searchable token or phrase extracted from a raw
// query string. Text is never empty once parsed.
type SearchTerm struct {
	Text    string
	Exact   bool // quoted phrase, matched literally with double weight
	Negated bool // preceded by NOT; a hit disqualifies the field
}

// SearchQuery is the structured form of a raw query string. Terms keep
// their input order and are never mutated after parsing.
type SearchQuery struct {
	Terms    []SearchTerm
	Operator Operator
}

// IsEmpty returns true if the query has no terms. Empty queries match
// nothing downstream.
func (q SearchQuery) IsEmpty() bool {
	return len(q.Terms) == 0
}

// HasPositiveTerm returns true if at least one term is not negated
func (q SearchQuery) HasPositiveTerm() bool {
	for _, term := range q.Terms {
		if !term.Negated {
			return true
		}
	}
	return false
}
