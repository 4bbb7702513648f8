package queryparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklens/tasklens-mcp/pkg/types"
)

func TestParse_EmptyAndDegenerate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Empty", ""},
		{"OnlyWhitespace", "   \t  "},
		{"OnlyAnd", "AND"},
		{"OnlyOperatorKeywords", "and OR not"},
		{"EmptyQuotes", `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := Parse(tt.raw)
			assert.Empty(t, query.Terms)
			assert.True(t, query.IsEmpty())
		})
	}
}

func TestParse_PlainTerms(t *testing.T) {
	query := Parse("buy milk")

	require.Len(t, query.Terms, 2)
	assert.Equal(t, types.SearchTerm{Text: "buy"}, query.Terms[0])
	assert.Equal(t, types.SearchTerm{Text: "milk"}, query.Terms[1])
	assert.Equal(t, types.OperatorAnd, query.Operator)
}

func TestParse_QuotedPhrase(t *testing.T) {
	query := Parse(`"foo bar"`)

	require.Len(t, query.Terms, 1)
	assert.Equal(t, types.SearchTerm{Text: "foo bar", Exact: true}, query.Terms[0])
}

func TestParse_Negation(t *testing.T) {
	query := Parse("NOT urgent")

	require.Len(t, query.Terms, 1)
	assert.Equal(t, types.SearchTerm{Text: "urgent", Negated: true}, query.Terms[0])
}

func TestParse_NegatedPhrase(t *testing.T) {
	query := Parse(`report NOT "first draft"`)

	require.Len(t, query.Terms, 2)
	assert.Equal(t, types.SearchTerm{Text: "report"}, query.Terms[0])
	assert.Equal(t, types.SearchTerm{Text: "first draft", Exact: true, Negated: true}, query.Terms[1])
}

func TestParse_OrOperator(t *testing.T) {
	query := Parse("a OR b")

	require.Len(t, query.Terms, 2)
	for _, term := range query.Terms {
		assert.False(t, term.Exact)
		assert.False(t, term.Negated)
	}
	assert.Equal(t, types.OperatorOr, query.Operator)
}

func TestParse_KeywordsAreCaseInsensitive(t *testing.T) {
	query := Parse("a or b")
	assert.Equal(t, types.OperatorOr, query.Operator)

	query = Parse("not a")
	require.Len(t, query.Terms, 1)
	assert.True(t, query.Terms[0].Negated)
}

func TestParse_QuotedKeywordIsATerm(t *testing.T) {
	// Quoting suppresses keyword handling entirely.
	query := Parse(`"AND"`)

	require.Len(t, query.Terms, 1)
	assert.Equal(t, types.SearchTerm{Text: "AND", Exact: true}, query.Terms[0])
	assert.Equal(t, types.OperatorAnd, query.Operator)
}

func TestParse_UnterminatedQuote(t *testing.T) {
	query := Parse(`milk "half fin`)

	require.Len(t, query.Terms, 2)
	assert.Equal(t, types.SearchTerm{Text: "milk"}, query.Terms[0])
	assert.Equal(t, types.SearchTerm{Text: "half fin", Exact: true}, query.Terms[1])
}

func TestParse_QuoteAdjacentToToken(t *testing.T) {
	// Opening a quote flushes the pending token as a plain term.
	query := Parse(`pre"quoted"`)

	require.Len(t, query.Terms, 2)
	assert.Equal(t, types.SearchTerm{Text: "pre"}, query.Terms[0])
	assert.Equal(t, types.SearchTerm{Text: "quoted", Exact: true}, query.Terms[1])
}

func TestParse_TrailingKeyword(t *testing.T) {
	// A trailing operator keyword adjusts state instead of becoming a term.
	query := Parse("milk OR")

	require.Len(t, query.Terms, 1)
	assert.Equal(t, "milk", query.Terms[0].Text)
	assert.Equal(t, types.OperatorOr, query.Operator)
}

func TestParse_WhitespacePreservedInsideQuotes(t *testing.T) {
	query := Parse(`"two  spaces"`)

	require.Len(t, query.Terms, 1)
	assert.Equal(t, "two  spaces", query.Terms[0].Text)
}

func TestParse_NegationBindsToNextTermOnly(t *testing.T) {
	query := Parse("NOT draft report")

	require.Len(t, query.Terms, 2)
	assert.True(t, query.Terms[0].Negated)
	assert.False(t, query.Terms[1].Negated)
}

func TestParse_LastOperatorWins(t *testing.T) {
	// One operator applies to the whole query; the scan keeps the last
	// keyword seen.
	query := Parse("a OR b AND c")

	require.Len(t, query.Terms, 3)
	assert.Equal(t, types.OperatorAnd, query.Operator)
}

func TestParse_ReturnsFreshQueries(t *testing.T) {
	first := Parse("alpha beta")
	second := Parse("alpha beta")

	// Mutating one parse result must not leak into another.
	first.Terms[0].Text = "mutated"
	assert.Equal(t, "alpha", second.Terms[0].Text)
}
