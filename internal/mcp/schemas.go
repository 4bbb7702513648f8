package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// upsertTaskTool returns the tool definition for upsert_task
func upsertTaskTool() mcp.Tool {
	return mcp.Tool{
		Name:        "upsert_task",
		Description: "Create a task, or update an existing one when id is given",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Task UUID; omit to create a new task",
				},
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Task title (required, searched at the highest weight)",
				},
				"project": map[string]interface{}{
					"type":        "string",
					"description": "Project the task belongs to",
				},
				"context": map[string]interface{}{
					"type":        "string",
					"description": "GTD-style context, e.g. 'errands' or 'office'",
				},
				"tags": map[string]interface{}{
					"type":        "array",
					"description": "Free-form tags",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"notes": map[string]interface{}{
					"type":        "string",
					"description": "Long-form notes",
				},
				"flagged": map[string]interface{}{
					"type":        "boolean",
					"description": "Flagged tasks rank higher in search",
					"default":     false,
				},
				"priority": map[string]interface{}{
					"type":        "string",
					"description": "Task priority",
					"enum":        []string{"high", "medium", "low"},
					"default":     "medium",
				},
				"completed": map[string]interface{}{
					"type":        "boolean",
					"description": "Mark the task as completed",
					"default":     false,
				},
			},
			Required: []string{"title"},
		},
	}
}

// listTasksTool returns the tool definition for list_tasks
func listTasksTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_tasks",
		Description: "List stored tasks",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"include_completed": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, include completed tasks",
					"default":     false,
				},
			},
		},
	}
}

// searchTasksTool returns the tool definition for search_tasks
func searchTasksTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_tasks",
		Description: "Search tasks with a boolean query: plain terms, \"exact phrases\", NOT negation, and a query-wide AND/OR operator",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query, e.g. 'report NOT draft' or '\"exact phrase\" OR milk'",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-100)",
					"default":     20,
					"minimum":     1,
					"maximum":     100,
				},
				"include_completed": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, search completed tasks as well",
					"default":     false,
				},
				"save_recent": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, record the query in the recent-search list",
					"default":     true,
				},
			},
			Required: []string{"query"},
		},
	}
}

// recentSearchesTool returns the tool definition for recent_searches
func recentSearchesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "recent_searches",
		Description: "List or clear the saved recent-search queries (most recent first, capped at 20)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"action": map[string]interface{}{
					"type":        "string",
					"description": "Operation to perform",
					"enum":        []string{"list", "clear"},
					"default":     "list",
				},
			},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report task counts, recent-search count, and database schema version",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
