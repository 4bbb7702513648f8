package scorer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklens/tasklens-mcp/internal/queryparser"
	"github.com/tasklens/tasklens-mcp/pkg/types"
)

// fixedNow keeps recency boosts out of tests that don't exercise them:
// tasks default to a ModifiedAt far in the past.
var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testTask(title string) types.Task {
	return types.Task{
		ID:         "task-1",
		Title:      title,
		Priority:   types.PriorityMedium,
		ModifiedAt: fixedNow.Add(-30 * 24 * time.Hour),
	}
}

func TestScore_TitlePrefixMatch(t *testing.T) {
	task := testTask("Buy milk")

	result, ok := Score(task, queryparser.Parse("buy"), fixedNow)

	require.True(t, ok)
	assert.Equal(t, "task-1", result.TaskID)
	assert.InDelta(t, WeightTitle*1.5, result.RelevanceScore, 1e-9)
	assert.Equal(t, []string{FieldTitle}, result.MatchedFields)
	require.Len(t, result.Highlights, 1)
	assert.Equal(t, "Buy", result.Highlights[0].MatchedText)
}

func TestScore_TitleOutweighsNotes(t *testing.T) {
	query := queryparser.Parse("invoice")

	notesOnly := testTask("Monthly admin")
	notesOnly.Notes = "pay the invoice"

	titleToo := testTask("Send invoice")
	titleToo.Notes = "pay the invoice"

	low, ok := Score(notesOnly, query, fixedNow)
	require.True(t, ok)
	high, ok := Score(titleToo, query, fixedNow)
	require.True(t, ok)

	assert.Greater(t, high.RelevanceScore, low.RelevanceScore)
}

func TestScore_FieldWeightsSum(t *testing.T) {
	task := testTask("errand run")
	task.Project = "errand list"
	task.Context = "errand"
	task.Tags = []string{"errand", "weekly"}
	task.Notes = "an errand note"

	result, ok := Score(task, queryparser.Parse("errand"), fixedNow)

	require.True(t, ok)
	// title prefix 10*1.5, project prefix 5*1.5, context prefix 3*1.5,
	// tags prefix 4*1.5, notes mid-field 1*1.0
	expected := WeightTitle*1.5 + WeightProject*1.5 + WeightContext*1.5 + WeightTags*1.5 + WeightNotes*1.0
	assert.InDelta(t, expected, result.RelevanceScore, 1e-9)
	assert.Equal(t,
		[]string{FieldTitle, FieldProject, FieldContext, FieldTags, FieldNotes},
		result.MatchedFields)
}

func TestScore_AbsentFieldsSkipped(t *testing.T) {
	task := testTask("Plain task")
	// No project, context, tags, or notes.

	result, ok := Score(task, queryparser.Parse("plain"), fixedNow)

	require.True(t, ok)
	assert.Equal(t, []string{FieldTitle}, result.MatchedFields)
}

func TestScore_TagsMatchAsOneField(t *testing.T) {
	task := testTask("Water the plants")
	task.Tags = []string{"garden", "home care"}

	result, ok := Score(task, queryparser.Parse("home"), fixedNow)

	require.True(t, ok)
	assert.Equal(t, []string{FieldTags}, result.MatchedFields)
	// "garden home care": mid-field substring, no prefix bonus.
	assert.InDelta(t, WeightTags*1.0, result.RelevanceScore, 1e-9)
}

func TestScore_FlaggedBoost(t *testing.T) {
	query := queryparser.Parse("milk")

	plain := testTask("Buy milk")
	flagged := testTask("Buy milk")
	flagged.Flagged = true

	base, ok := Score(plain, query, fixedNow)
	require.True(t, ok)
	boosted, ok := Score(flagged, query, fixedNow)
	require.True(t, ok)

	assert.InDelta(t, base.RelevanceScore*BoostFlagged, boosted.RelevanceScore, 1e-9)
}

func TestScore_PriorityBoosts(t *testing.T) {
	query := queryparser.Parse("milk")

	tests := []struct {
		name     string
		priority types.Priority
		factor   float64
	}{
		{"High", types.PriorityHigh, BoostHighPriority},
		{"Medium", types.PriorityMedium, 1.0},
		{"Low", types.PriorityLow, BoostLowPriority},
	}

	base, ok := Score(testTask("Buy milk"), query, fixedNow)
	require.True(t, ok)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := testTask("Buy milk")
			task.Priority = tt.priority

			result, ok := Score(task, query, fixedNow)
			require.True(t, ok)
			assert.InDelta(t, base.RelevanceScore*tt.factor, result.RelevanceScore, 1e-9)
		})
	}
}

func TestScore_RecencyBoost(t *testing.T) {
	query := queryparser.Parse("milk")

	stale := testTask("Buy milk")
	stale.ModifiedAt = fixedNow.Add(-8 * 24 * time.Hour)

	fresh := testTask("Buy milk")
	fresh.ModifiedAt = fixedNow.Add(-24 * time.Hour)

	staleResult, ok := Score(stale, query, fixedNow)
	require.True(t, ok)
	freshResult, ok := Score(fresh, query, fixedNow)
	require.True(t, ok)

	assert.InDelta(t, staleResult.RelevanceScore*BoostRecent, freshResult.RelevanceScore, 1e-9)
}

func TestScore_RecencyWindowIsStrict(t *testing.T) {
	query := queryparser.Parse("milk")

	boundary := testTask("Buy milk")
	boundary.ModifiedAt = fixedNow.Add(-RecencyWindow)

	base, ok := Score(testTask("Buy milk"), query, fixedNow)
	require.True(t, ok)
	result, ok := Score(boundary, query, fixedNow)
	require.True(t, ok)

	// Exactly seven days old does not qualify.
	assert.InDelta(t, base.RelevanceScore, result.RelevanceScore, 1e-9)
}

func TestScore_NegatedFieldStillAllowsOthers(t *testing.T) {
	// A negated term hit disqualifies that field only; other fields can
	// still carry the match.
	query := queryparser.Parse("report NOT draft")

	task := testTask("Quarterly report draft")
	task.Notes = "final report attached"

	result, ok := Score(task, query, fixedNow)

	require.True(t, ok)
	assert.Equal(t, []string{FieldNotes}, result.MatchedFields)
}

func TestScore_NoMatch(t *testing.T) {
	_, ok := Score(testTask("Buy milk"), queryparser.Parse("unrelated"), fixedNow)
	assert.False(t, ok)
}

func TestScore_EmptyQuery(t *testing.T) {
	_, ok := Score(testTask("Buy milk"), queryparser.Parse("  "), fixedNow)
	assert.False(t, ok)
}

func TestScore_BoostsNeverResurrectNonMatch(t *testing.T) {
	task := testTask("Buy milk")
	task.Flagged = true
	task.Priority = types.PriorityHigh
	task.ModifiedAt = fixedNow

	_, ok := Score(task, queryparser.Parse("unrelated"), fixedNow)
	assert.False(t, ok)
}
