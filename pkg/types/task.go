package types

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority represents the urgency level of a task
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Task represents a single to-do item with its searchable text fields
// and the metadata that feeds relevance boosts
type Task struct {
	// Identification
	ID string // UUID string

	// Searchable content
	Title   string
	Project string // Optional - empty when the task belongs to no project
	Context string // Optional - GTD-style context such as "errands"
	Tags    []string
	Notes   string

	// Metadata
	Flagged   bool
	Priority  Priority
	Completed bool

	// Timestamps
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// NewTask creates a task with a fresh UUID, medium priority, and
// current timestamps
func NewTask(title string) Task {
	now := time.Now()
	return Task{
		ID:         uuid.New().String(),
		Title:      title,
		Priority:   PriorityMedium,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// TagsText returns the tags joined by single spaces, the form in which
// they are matched as one searchable field
func (t *Task) TagsText() string {
	return strings.Join(t.Tags, " ")
}

// ValidatePriority checks if the priority is one of the known levels
func (t *Task) ValidatePriority() error {
	switch t.Priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return nil
	default:
		return errors.New("invalid priority")
	}
}

// Validate performs comprehensive validation of the task
func (t *Task) Validate() error {
	if t.ID == "" {
		return errors.New("task ID is required")
	}

	if t.Title == "" {
		return ErrEmptyTitle
	}

	if err := t.ValidatePriority(); err != nil {
		return err
	}

	return nil
}
