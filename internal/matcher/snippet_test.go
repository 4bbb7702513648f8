package matcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContext_ShortTextUnchanged(t *testing.T) {
	text := "short note"
	snippet := ExtractContext(text, 0, 5, 50)
	assert.Equal(t, text, snippet)
}

func TestExtractContext_TruncatedBothEdges(t *testing.T) {
	text := strings.Repeat("a", 100) + "match" + strings.Repeat("b", 100)

	snippet := ExtractContext(text, 100, 5, 10)

	assert.Equal(t, "..."+strings.Repeat("a", 10)+"match"+strings.Repeat("b", 10)+"...", snippet)
}

func TestExtractContext_MatchAtStart(t *testing.T) {
	text := "match" + strings.Repeat("b", 100)

	snippet := ExtractContext(text, 0, 5, 10)

	assert.True(t, strings.HasPrefix(snippet, "match"))
	assert.True(t, strings.HasSuffix(snippet, "..."))
}

func TestExtractContext_MatchAtEnd(t *testing.T) {
	text := strings.Repeat("a", 100) + "match"

	snippet := ExtractContext(text, 100, 5, 10)

	assert.True(t, strings.HasPrefix(snippet, "..."))
	assert.True(t, strings.HasSuffix(snippet, "match"))
}

func TestExtractContext_DefaultWindow(t *testing.T) {
	text := strings.Repeat("a", 200) + "match" + strings.Repeat("b", 200)

	snippet := ExtractContext(text, 200, 5, 0)

	// Non-positive size falls back to DefaultContextChars on each side.
	expected := "..." + strings.Repeat("a", DefaultContextChars) + "match" + strings.Repeat("b", DefaultContextChars) + "..."
	assert.Equal(t, expected, snippet)
}

func TestExtractContext_RuneWindow(t *testing.T) {
	// Multi-byte text: the window is counted in runes, not bytes.
	text := strings.Repeat("ä", 60) + "treffer" + strings.Repeat("ö", 60)

	snippet := ExtractContext(text, 60, 7, 5)

	assert.Equal(t, "..."+strings.Repeat("ä", 5)+"treffer"+strings.Repeat("ö", 5)+"...", snippet)
}

func TestExtractContext_InvalidSpanReturnsText(t *testing.T) {
	text := "short"

	assert.Equal(t, text, ExtractContext(text, -1, 3, 10))
	assert.Equal(t, text, ExtractContext(text, 0, 0, 10))
	assert.Equal(t, text, ExtractContext(text, 3, 10, 10))
}

func TestExtractContext_Deterministic(t *testing.T) {
	text := strings.Repeat("x", 80) + "needle" + strings.Repeat("y", 80)

	first := ExtractContext(text, 80, 6, 20)
	second := ExtractContext(text, 80, 6, 20)

	assert.Equal(t, first, second)
}
