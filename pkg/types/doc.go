// Package types provides shared type definitions for the tasklens MCP server.
//
// This package defines the domain types used across multiple components of
// tasklens: tasks, parsed search queries, highlight spans, and ranked search
// results.
//
// # Core Types
//
// Task represents a to-do item with its searchable fields and the metadata
// that drives relevance boosts:
//
//	task := types.NewTask("Buy milk")
//	task.Project = "Groceries"
//	task.Tags = []string{"errand", "weekly"}
//	task.Priority = types.PriorityHigh
//
// SearchQuery is the structured form of a raw query string, produced by the
// queryparser package:
//
//	query := types.SearchQuery{
//	    Terms: []types.SearchTerm{
//	        {Text: "report", Exact: false, Negated: false},
//	        {Text: "draft", Exact: false, Negated: true},
//	    },
//	    Operator: types.OperatorAnd,
//	}
//
// # Search Results
//
// SearchResult combines a task reference with relevance scoring and the
// highlight spans that produced the match:
//
//	result := types.SearchResult{
//	    TaskID:         task.ID,
//	    Rank:           1,
//	    RelevanceScore: 15.0,
//	    MatchedFields:  []string{"title"},
//	}
//
// Relevance scores are weighted sums, not normalized: a title match is worth
// ten times a notes match before boost factors apply. Emitted results always
// carry a strictly positive score; non-matches are dropped before ranking.
//
// # Highlight Offsets
//
// SearchHighlight offsets and lengths are rune counts into the original-cased
// field text. Matching happens against a lowercased working copy, but the
// lowercasing is done per rune so spans stay index-aligned with the text the
// UI actually renders.
//
// # Validation
//
// Domain types implement validation methods to ensure data integrity:
//
//	if err := task.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package types
