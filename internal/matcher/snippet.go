package matcher

// DefaultContextChars is the snippet window radius used when the caller
// passes a non-positive size.
const DefaultContextChars = 50

const ellipsis = "..."

// ExtractContext returns a window of text centered on a match, for
// rendering a result snippet. The window extends contextChars runes on
// either side of the span and is marked with an ellipsis at any edge where
// text was truncated. Offsets and lengths are rune counts, matching
// SearchHighlight spans.
//
// A span that does not fit inside text returns the text unchanged, so a
// stale highlight can never panic the renderer.
func ExtractContext(text string, matchOffset, matchLength, contextChars int) string {
	if contextChars <= 0 {
		contextChars = DefaultContextChars
	}

	runes := []rune(text)
	if matchOffset < 0 || matchLength <= 0 || matchOffset+matchLength > len(runes) {
		return text
	}

	start := matchOffset - contextChars
	if start < 0 {
		start = 0
	}
	end := matchOffset + matchLength + contextChars
	if end > len(runes) {
		end = len(runes)
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = ellipsis + snippet
	}
	if end < len(runes) {
		snippet += ellipsis
	}
	return snippet
}
