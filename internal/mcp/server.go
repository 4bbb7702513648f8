package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/tasklens/tasklens-mcp/internal/ranker"
	"github.com/tasklens/tasklens-mcp/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "tasklens-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// DefaultDBPath is the default location for the database
	DefaultDBPath = "~/.tasklens"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp     *server.MCPServer
	storage storage.Storage
	ranker  *ranker.Ranker
}

// NewServer creates a new MCP server instance
func NewServer(dbPath string) (*Server, error) {
	// Expand home directory if needed
	if dbPath == "" || dbPath == DefaultDBPath {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tasklens")
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dbFile := filepath.Join(dbPath, "tasklens.db")

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Create MCP server
	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:     mcpServer,
		storage: store,
		ranker:  ranker.New(),
	}

	s.registerTools()

	return s, nil
}

// newServerWithStorage wires a server around an existing store, for tests
func newServerWithStorage(store storage.Storage) *Server {
	s := &Server{
		mcp:     server.NewMCPServer(ServerName, ServerVersion),
		storage: store,
		ranker:  ranker.New(),
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.storage.Close() }()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(upsertTaskTool(), s.handleUpsertTask)
	s.mcp.AddTool(listTasksTool(), s.handleListTasks)
	s.mcp.AddTool(searchTasksTool(), s.handleSearchTasks)
	s.mcp.AddTool(recentSearchesTool(), s.handleRecentSearches)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
}
