package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tasklens/tasklens-mcp/pkg/types"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
)

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite benefits from single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Apply migrations
	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// Task operations

// UpsertTask inserts the task or replaces an existing row with the same ID.
// Zero timestamps are filled in: CreatedAt on first insert, ModifiedAt
// always.
func (s *SQLiteStorage) UpsertTask(ctx context.Context, task *types.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("invalid task: %w", err)
	}

	now := time.Now()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	if task.ModifiedAt.IsZero() {
		task.ModifiedAt = now
	}

	tags, err := json.Marshal(task.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	query := `
		INSERT INTO tasks (id, title, project, context, tags, notes, flagged, priority, completed, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			project = excluded.project,
			context = excluded.context,
			tags = excluded.tags,
			notes = excluded.notes,
			flagged = excluded.flagged,
			priority = excluded.priority,
			completed = excluded.completed,
			modified_at = excluded.modified_at
	`
	_, err = s.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Project, task.Context, string(tags), task.Notes,
		task.Flagged, string(task.Priority), task.Completed, task.CreatedAt, task.ModifiedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert task: %w", err)
	}

	return nil
}

// GetTask retrieves a task by ID
func (s *SQLiteStorage) GetTask(ctx context.Context, id string) (*types.Task, error) {
	query := `
		SELECT id, title, project, context, tags, notes, flagged, priority, completed, created_at, modified_at
		FROM tasks
		WHERE id = ?
	`
	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// ListTasks returns all stored tasks in creation order. Completed tasks
// are excluded unless includeCompleted is set.
func (s *SQLiteStorage) ListTasks(ctx context.Context, includeCompleted bool) ([]types.Task, error) {
	query := `
		SELECT id, title, project, context, tags, notes, flagged, priority, completed, created_at, modified_at
		FROM tasks
	`
	if !includeCompleted {
		query += " WHERE completed = 0"
	}
	query += " ORDER BY created_at, id"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []types.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// DeleteTask removes a task by ID
func (s *SQLiteStorage) DeleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*types.Task, error) {
	var task types.Task
	var tags, priority string

	err := row.Scan(&task.ID, &task.Title, &task.Project, &task.Context, &tags, &task.Notes,
		&task.Flagged, &priority, &task.Completed, &task.CreatedAt, &task.ModifiedAt)
	if err != nil {
		return nil, err
	}

	task.Priority = types.Priority(priority)
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &task.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags: %w", err)
		}
	}

	return &task, nil
}

// Recent search operations

// SaveRecentSearch performs a move-to-front insert with de-duplication and
// truncates the list to MaxRecentSearches. Blank queries are ignored.
func (s *SQLiteStorage) SaveRecentSearch(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Re-inserting under a fresh autoincrement ID is the move-to-front:
	// recency order is simply descending ID.
	if _, err := tx.ExecContext(ctx, "DELETE FROM recent_searches WHERE query = ?", query); err != nil {
		return fmt.Errorf("failed to de-duplicate recent search: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO recent_searches (query, saved_at) VALUES (?, ?)", query, time.Now()); err != nil {
		return fmt.Errorf("failed to save recent search: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM recent_searches
		WHERE id NOT IN (SELECT id FROM recent_searches ORDER BY id DESC LIMIT ?)
	`, MaxRecentSearches); err != nil {
		return fmt.Errorf("failed to prune recent searches: %w", err)
	}

	return tx.Commit()
}

// ListRecentSearches returns saved queries, most recent first
func (s *SQLiteStorage) ListRecentSearches(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT query FROM recent_searches ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list recent searches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var queries []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, fmt.Errorf("failed to scan recent search: %w", err)
		}
		queries = append(queries, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recent searches: %w", err)
	}

	return queries, nil
}

// ClearRecentSearches removes all saved queries
func (s *SQLiteStorage) ClearRecentSearches(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM recent_searches"); err != nil {
		return fmt.Errorf("failed to clear recent searches: %w", err)
	}
	return nil
}

// Status operations

// GetStatus returns database statistics
func (s *SQLiteStorage) GetStatus(ctx context.Context) (*Status, error) {
	status := &Status{}

	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks").Scan(&status.TaskCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks WHERE completed = 1").Scan(&status.CompletedCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed tasks: %w", err)
	}

	err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recent_searches").Scan(&status.RecentSearchCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count recent searches: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		"SELECT version FROM schema_version ORDER BY applied_at DESC LIMIT 1").Scan(&status.SchemaVersion)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}

	return status, nil
}
