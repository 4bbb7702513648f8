package types

import "errors"

// Domain errors for type validation
var (
	// Task errors
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// Search result errors
	ErrInvalidTaskID         = errors.New("invalid task ID")
	ErrInvalidRank           = errors.New("rank must be >= 1")
	ErrInvalidRelevanceScore = errors.New("relevance score must be positive")

	// Highlight errors
	ErrEmptyFieldName = errors.New("highlight field name cannot be empty")
	ErrInvalidOffset  = errors.New("highlight offset must be >= 0")
	ErrInvalidLength  = errors.New("highlight length must be > 0")
)
