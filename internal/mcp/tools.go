package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tasklens/tasklens-mcp/internal/matcher"
	"github.com/tasklens/tasklens-mcp/internal/scorer"
	"github.com/tasklens/tasklens-mcp/internal/storage"
	"github.com/tasklens/tasklens-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeTaskNotFound  = -32001 // Task ID does not exist
	ErrorCodeEmptyQuery    = -32004 // Query parameter is empty
)

// handleUpsertTask handles the upsert_task tool invocation
func (s *Server) handleUpsertTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "title parameter is required", map[string]interface{}{
			"param":  "title",
			"reason": "missing or empty",
		})
	}

	created := false
	var task types.Task

	if id := getStringDefault(args, "id", ""); id != "" {
		existing, err := s.storage.GetTask(ctx, id)
		if err != nil {
			return nil, newMCPError(ErrorCodeTaskNotFound, "task not found", map[string]interface{}{
				"id": id,
			})
		}
		task = *existing
		task.Title = title
		task.ModifiedAt = time.Now()
	} else {
		task = types.NewTask(title)
		created = true
	}

	task.Project = getStringDefault(args, "project", task.Project)
	task.Context = getStringDefault(args, "context", task.Context)
	task.Notes = getStringDefault(args, "notes", task.Notes)
	task.Flagged = getBoolDefault(args, "flagged", task.Flagged)
	task.Completed = getBoolDefault(args, "completed", task.Completed)

	priority := getStringDefault(args, "priority", string(task.Priority))
	task.Priority = types.Priority(priority)
	if err := task.ValidatePriority(); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid priority", map[string]interface{}{
			"param":   "priority",
			"value":   priority,
			"allowed": []string{"high", "medium", "low"},
		})
	}

	if tags, ok := args["tags"].([]interface{}); ok {
		task.Tags = task.Tags[:0]
		for _, tag := range tags {
			if str, ok := tag.(string); ok && str != "" {
				task.Tags = append(task.Tags, str)
			}
		}
	}

	if err := s.storage.UpsertTask(ctx, &task); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to save task", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"id":      task.ID,
		"created": created,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListTasks handles the list_tasks tool invocation
func (s *Server) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	includeCompleted := getBoolDefault(args, "include_completed", false)

	tasks, err := s.storage.ListTasks(ctx, includeCompleted)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list tasks", map[string]interface{}{
			"error": err.Error(),
		})
	}

	items := make([]map[string]interface{}, 0, len(tasks))
	for i := range tasks {
		items = append(items, taskJSON(&tasks[i]))
	}

	response := map[string]interface{}{
		"total": len(items),
		"tasks": items,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleSearchTasks handles the search_tasks tool invocation
func (s *Server) handleSearchTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	}

	limit := getIntDefault(args, "limit", 20)
	if limit < 1 || limit > 100 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 100", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	includeCompleted := getBoolDefault(args, "include_completed", false)
	saveRecent := getBoolDefault(args, "save_recent", true)

	tasks, err := s.storage.ListTasks(ctx, includeCompleted)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to load tasks", map[string]interface{}{
			"error": err.Error(),
		})
	}

	results, err := s.ranker.SearchString(ctx, tasks, query)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "search failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// A recent-search failure must never abort a search that already
	// produced results.
	if saveRecent {
		if err := s.storage.SaveRecentSearch(ctx, query); err != nil {
			log.Printf("failed to save recent search %q: %v", query, err)
		}
	}

	if len(results) > limit {
		results = results[:limit]
	}

	byID := make(map[string]*types.Task, len(tasks))
	for i := range tasks {
		byID[tasks[i].ID] = &tasks[i]
	}

	items := make([]map[string]interface{}, 0, len(results))
	for i := range results {
		items = append(items, resultJSON(&results[i], byID[results[i].TaskID]))
	}

	response := map[string]interface{}{
		"query":         query,
		"total_results": len(items),
		"results":       items,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleRecentSearches handles the recent_searches tool invocation
func (s *Server) handleRecentSearches(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, _ := request.Params.Arguments.(map[string]interface{})
	action := getStringDefault(args, "action", "list")

	switch action {
	case "list":
		queries, err := s.storage.ListRecentSearches(ctx)
		if err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "failed to list recent searches", map[string]interface{}{
				"error": err.Error(),
			})
		}
		if queries == nil {
			queries = []string{}
		}
		response := map[string]interface{}{
			"total":    len(queries),
			"searches": queries,
		}
		return mcp.NewToolResultText(formatJSON(response)), nil

	case "clear":
		if err := s.storage.ClearRecentSearches(ctx); err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "failed to clear recent searches", map[string]interface{}{
				"error": err.Error(),
			})
		}
		response := map[string]interface{}{
			"cleared": true,
		}
		return mcp.NewToolResultText(formatJSON(response)), nil

	default:
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid action", map[string]interface{}{
			"param":   "action",
			"value":   action,
			"allowed": []string{"list", "clear"},
		})
	}
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status, err := s.storage.GetStatus(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to get status", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"tasks": map[string]interface{}{
			"total":     status.TaskCount,
			"completed": status.CompletedCount,
		},
		"recent_searches": status.RecentSearchCount,
		"schema_version":  status.SchemaVersion,
		"build_mode":      storage.BuildMode,
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Response shaping

// taskJSON renders a task for tool output
func taskJSON(task *types.Task) map[string]interface{} {
	return map[string]interface{}{
		"id":          task.ID,
		"title":       task.Title,
		"project":     task.Project,
		"context":     task.Context,
		"tags":        task.Tags,
		"notes":       task.Notes,
		"flagged":     task.Flagged,
		"priority":    string(task.Priority),
		"completed":   task.Completed,
		"modified_at": task.ModifiedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// resultJSON renders a search result, attaching a context snippet to each
// highlight so clients can show where the match landed
func resultJSON(result *types.SearchResult, task *types.Task) map[string]interface{} {
	highlights := make([]map[string]interface{}, 0, len(result.Highlights))
	for _, h := range result.Highlights {
		entry := map[string]interface{}{
			"field":  h.FieldName,
			"offset": h.Offset,
			"length": h.Length,
			"text":   h.MatchedText,
		}
		if task != nil {
			entry["snippet"] = matcher.ExtractContext(
				fieldText(task, h.FieldName), h.Offset, h.Length, matcher.DefaultContextChars)
		}
		highlights = append(highlights, entry)
	}

	item := map[string]interface{}{
		"task_id":        result.TaskID,
		"rank":           result.Rank,
		"score":          result.RelevanceScore,
		"matched_fields": result.MatchedFields,
		"highlights":     highlights,
	}
	if task != nil {
		item["title"] = task.Title
	}
	return item
}

// fieldText returns the searchable text of the named field
func fieldText(task *types.Task, field string) string {
	switch field {
	case scorer.FieldTitle:
		return task.Title
	case scorer.FieldProject:
		return task.Project
	case scorer.FieldContext:
		return task.Context
	case scorer.FieldTags:
		return task.TagsText()
	case scorer.FieldNotes:
		return task.Notes
	default:
		return ""
	}
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
