package storage

import (
	"context"

	"github.com/tasklens/tasklens-mcp/pkg/types"
)

// MaxRecentSearches caps the recent-search list. Saving beyond the cap
// silently drops the oldest entries.
const MaxRecentSearches = 20

// Storage defines the interface for persisting tasks and recent searches.
// The search engine itself never touches this interface; only the MCP
// shell does.
type Storage interface {
	// Task operations
	UpsertTask(ctx context.Context, task *types.Task) error
	GetTask(ctx context.Context, id string) (*types.Task, error)
	ListTasks(ctx context.Context, includeCompleted bool) ([]types.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// Recent search operations. Save is a move-to-front insert with
	// de-duplication, truncated to the MaxRecentSearches newest entries.
	SaveRecentSearch(ctx context.Context, query string) error
	ListRecentSearches(ctx context.Context) ([]string, error)
	ClearRecentSearches(ctx context.Context) error

	// Status operations
	GetStatus(ctx context.Context) (*Status, error)

	Close() error
}

// Status reports database statistics for the get_status tool
type Status struct {
	TaskCount         int
	CompletedCount    int
	RecentSearchCount int
	SchemaVersion     string
}
