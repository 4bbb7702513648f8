package scorer

import (
	"time"

	"github.com/tasklens/tasklens-mcp/internal/matcher"
	"github.com/tasklens/tasklens-mcp/pkg/types"
)

// Searchable field names as recorded in highlights and matched-field sets
const (
	FieldTitle   = "title"
	FieldProject = "project"
	FieldContext = "context"
	FieldTags    = "tags"
	FieldNotes   = "notes"
)

// Fixed field weights. A title hit is worth ten times a notes hit before
// boosts apply.
const (
	WeightTitle   = 10.0
	WeightProject = 5.0
	WeightContext = 3.0
	WeightTags    = 4.0
	WeightNotes   = 1.0
)

// Boost factors, each applied at most once, multiplicatively, after field
// scores are summed.
const (
	BoostFlagged      = 1.2
	BoostHighPriority = 1.3
	BoostLowPriority  = 0.9
	BoostRecent       = 1.1
)

// RecencyWindow is how recently a task must have been modified to earn
// the recency boost.
const RecencyWindow = 7 * 24 * time.Hour

// Score evaluates a single task against a parsed query. It runs the field
// matcher over each present searchable field, sums the weighted partial
// scores, unions the highlights, and applies the boost factors. The second
// return value is false when no field matched.
//
// now is the timestamp used for the recency boost. A ranking pass captures
// it once and hands the same value to every scoring call, so parallel
// scoring cannot produce order-dependent results.
func Score(task types.Task, query types.SearchQuery, now time.Time) (types.SearchResult, bool) {
	if query.IsEmpty() {
		return types.SearchResult{}, false
	}

	result := types.SearchResult{TaskID: task.ID}
	total := 0.0

	matchField := func(text string, weight float64, field string) {
		if text == "" {
			return
		}
		m, ok := matcher.MatchField(text, query, weight, field)
		if !ok {
			return
		}
		total += m.Score
		result.Highlights = append(result.Highlights, m.Highlights...)
		result.MatchedFields = append(result.MatchedFields, field)
	}

	matchField(task.Title, WeightTitle, FieldTitle)
	matchField(task.Project, WeightProject, FieldProject)
	matchField(task.Context, WeightContext, FieldContext)
	matchField(task.TagsText(), WeightTags, FieldTags)
	matchField(task.Notes, WeightNotes, FieldNotes)

	if total == 0 {
		return types.SearchResult{}, false
	}

	if task.Flagged {
		total *= BoostFlagged
	}

	switch task.Priority {
	case types.PriorityHigh:
		total *= BoostHighPriority
	case types.PriorityLow:
		total *= BoostLowPriority
	}

	if now.Sub(task.ModifiedAt) < RecencyWindow {
		total *= BoostRecent
	}

	result.RelevanceScore = total
	return result, true
}
