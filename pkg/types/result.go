package types

// SearchHighlight identifies where a match occurred inside a field, for
// UI rendering. Offset and Length are rune counts into the original-cased
// field text, never the lowercased working copy used during matching.
type SearchHighlight struct {
	FieldName   string
	Offset      int
	Length      int
	MatchedText string
}

// Validate checks if the highlight span is well formed
func (h *SearchHighlight) Validate() error {
	if h.FieldName == "" {
		return ErrEmptyFieldName
	}

	if h.Offset < 0 {
		return ErrInvalidOffset
	}

	if h.Length <= 0 {
		return ErrInvalidLength
	}

	return nil
}

// SearchResult represents a single task matched by a search, with its
// relevance score and the spans that produced it
type SearchResult struct {
	// Identification
	TaskID string
	Rank   int // Position in result set (1-based), assigned after sorting

	// Scoring
	RelevanceScore float64 // Always strictly positive in emitted results

	// Match details
	Highlights    []SearchHighlight
	MatchedFields []string // Field names with at least one match, in evaluation order
}

// Validate checks if the search result is valid
func (sr *SearchResult) Validate() error {
	if sr.TaskID == "" {
		return ErrInvalidTaskID
	}

	if sr.Rank < 1 {
		return ErrInvalidRank
	}

	if sr.RelevanceScore <= 0 {
		return ErrInvalidRelevanceScore
	}

	for i := range sr.Highlights {
		if err := sr.Highlights[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}
