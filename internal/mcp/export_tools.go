// ABOUTME: MCP tool implementation for running career log exports.
// ABOUTME: Registers export_log, which runs the export pipeline and saves the file.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/worklog/internal/export"
	"github.com/2389-research/worklog/internal/models"
)

func (s *Server) registerExportTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "export_log",
		Description: "Export career log records to a document. Formats: csv, json, txt, pdf, docx (docx produces an RTF file).",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"format": {"type": "string", "enum": ["csv", "json", "txt", "pdf", "docx"], "description": "Export format"},
				"path": {"type": "string", "description": "Output file path; defaults to a generated name in the export directory"},
				"from": {"type": "string", "description": "Inclusive start date (YYYY-MM-DD)"},
				"to": {"type": "string", "description": "Inclusive end date (YYYY-MM-DD)"},
				"categories": {"type": "array", "items": {"type": "string"}, "description": "Restrict to these categories"},
				"include_metadata": {"type": "boolean", "description": "Include record IDs and timestamps"}
			},
			"required": ["format"]
		}`),
	}, s.handleExportLog)
}

func (s *Server) handleExportLog(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Format          string   `json:"format"`
		Path            string   `json:"path"`
		From            string   `json:"from"`
		To              string   `json:"to"`
		Categories      []string `json:"categories"`
		IncludeMetadata bool     `json:"include_metadata"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	format, err := models.ParseFormat(args.Format)
	if err != nil {
		return toolError("%v", err), nil
	}

	records, err := s.records.ListRecords(0, 0)
	if err != nil {
		return toolError("failed to list records: %v", err), nil
	}

	opts := &models.ExportOptions{
		Format:          format,
		IncludeMetadata: args.IncludeMetadata,
		FromDate:        args.From,
		ToDate:          args.To,
		Categories:      args.Categories,
	}

	result, err := export.Export(records, opts)
	if err != nil {
		if errors.Is(err, export.ErrNoRecords) {
			return toolError("no records match the export filters"), nil
		}
		return toolError("export failed: %v", err), nil
	}

	path := args.Path
	if path == "" {
		path = filepath.Join(s.exportDir, result.Filename)
	}
	if err := os.WriteFile(path, result.Data, 0600); err != nil {
		return toolError("failed to save export: %v", err), nil
	}

	return toolText("Exported %d bytes (%s) to %s", len(result.Data), result.MediaType, path), nil
}
