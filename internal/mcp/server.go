// ABOUTME: MCP server initialization and configuration for worklog.
// ABOUTME: Sets up server with record and export tools for AI agent access.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/worklog/internal/storage"
)

// Server wraps the MCP server with record storage.
type Server struct {
	mcp       *gomcp.Server
	records   storage.RecordStore
	exportDir string
}

// ServerOption configures optional Server dependencies.
type ServerOption func(*Server)

// WithExportDir sets the directory exported documents are written to.
// Defaults to the current working directory.
func WithExportDir(dir string) ServerOption {
	return func(s *Server) {
		s.exportDir = dir
	}
}

// NewServer creates an MCP server with record and export capabilities.
func NewServer(records storage.RecordStore, opts ...ServerOption) (*Server, error) {
	if records == nil {
		return nil, fmt.Errorf("record store is required")
	}

	mcpServer := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "worklog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:     mcpServer,
		records: records,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.registerRecordTools()
	s.registerExportTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}
