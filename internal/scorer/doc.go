// Package scorer computes a relevance score for one task against a query.
//
// Each searchable field is matched independently with a fixed weight
// (title 10, project 5, context 3, tags 4, notes 1) and the partial scores
// are summed. Three multiplicative boosts then apply, each exactly once:
// x1.2 for flagged tasks, x1.3 / x0.9 for high / low priority, and x1.1
// for tasks modified within the last seven days.
//
// The boolean operator is evaluated field by field, matching the behavior
// of the application this engine ranks for: "a AND b" accepts a task whose
// title contains only "a" while its notes contain only "b".
//
// Score is pure: all inputs arrive as parameters, including the "now" used
// for the recency boost, and no state survives between calls.
package scorer
