// ABOUTME: MCP tool implementations for career record operations.
// ABOUTME: Registers add_record, search_records, and list_recent_records.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/worklog/internal/models"
	"github.com/2389-research/worklog/internal/search"
)

func (s *Server) registerRecordTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "add_record",
		Description: "Add a career log record. Categories: achievement, project, skill, leadership, learning, feedback.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"date": {"type": "string", "description": "Calendar date of the accomplishment (YYYY-MM-DD)"},
				"category": {"type": "string", "enum": ["achievement", "project", "skill", "leadership", "learning", "feedback"], "description": "Record category"},
				"description": {"type": "string", "description": "What was done"},
				"impact": {"type": "string", "description": "Optional impact statement"},
				"skills": {"type": "array", "items": {"type": "string"}, "description": "Skills exercised"},
				"tags": {"type": "array", "items": {"type": "string"}, "description": "Free-form tags"},
				"project": {"type": "string", "description": "Optional project name"}
			},
			"required": ["date", "category", "description"]
		}`),
	}, s.handleAddRecord)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "search_records",
		Description: "Search career log records using keyword queries. Returns matching records ranked by relevance.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Search query text"},
				"limit": {"type": "number", "description": "Maximum number of results (default 10)"},
				"categories": {"type": "array", "items": {"type": "string"}, "description": "Filter by categories"}
			},
			"required": ["query"]
		}`),
	}, s.handleSearchRecords)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "list_recent_records",
		Description: "Get recent career log records, newest first.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"days": {"type": "number", "description": "Number of days back to search (default: 30)"},
				"limit": {"type": "number", "description": "Maximum number of records to return (default: 10)"}
			}
		}`),
	}, s.handleListRecentRecords)
}

func (s *Server) handleAddRecord(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Date        string   `json:"date"`
		Category    string   `json:"category"`
		Description string   `json:"description"`
		Impact      string   `json:"impact"`
		Skills      []string `json:"skills"`
		Tags        []string `json:"tags"`
		Project     string   `json:"project"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.Description == "" {
		return toolError("description is required"), nil
	}

	rec, err := models.NewRecord(args.Date, args.Category, args.Description)
	if err != nil {
		return toolError("invalid record: %v", err), nil
	}
	rec.Impact = args.Impact
	rec.Skills = args.Skills
	rec.Tags = args.Tags
	rec.Project = args.Project

	if err := s.records.WriteRecord(rec); err != nil {
		return toolError("failed to write record: %v", err), nil
	}

	return toolText("Record saved: %s", rec.FilePath), nil
}

func (s *Server) handleSearchRecords(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Query      string   `json:"query"`
		Limit      int      `json:"limit"`
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.Query == "" {
		return toolError("query is required"), nil
	}

	records, err := s.records.ListRecords(0, 0)
	if err != nil {
		return toolError("failed to list records: %v", err), nil
	}

	results := search.Search(records, args.Query, search.Options{
		Limit:      args.Limit,
		Categories: args.Categories,
	})

	if len(results) == 0 {
		return toolText("No matching records found."), nil
	}

	var sb strings.Builder
	for i, res := range results {
		if i > 0 {
			sb.WriteString("\n---\n")
		}
		writeRecordSummary(&sb, res.Record)
	}

	return toolText("%s", sb.String()), nil
}

func (s *Server) handleListRecentRecords(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Days  int `json:"days"`
		Limit int `json:"limit"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if args.Days <= 0 {
		args.Days = 30
	}
	if args.Limit <= 0 {
		args.Limit = 10
	}

	records, err := s.records.ListRecords(args.Limit, args.Days)
	if err != nil {
		return toolError("failed to list records: %v", err), nil
	}

	if len(records) == 0 {
		return toolText("No recent records found."), nil
	}

	var sb strings.Builder
	for _, rec := range records {
		sb.WriteString(fmt.Sprintf("- %s [%s] %s\n", rec.Date, rec.Category, rec.Description))
	}

	return toolText("%s", sb.String()), nil
}

// writeRecordSummary renders one record for tool output.
func writeRecordSummary(sb *strings.Builder, rec *models.Record) {
	sb.WriteString(fmt.Sprintf("Date: %s\n", rec.Date))
	sb.WriteString(fmt.Sprintf("Category: %s\n", rec.Category))
	sb.WriteString(fmt.Sprintf("Description: %s\n", rec.Description))
	if rec.Impact != "" {
		sb.WriteString(fmt.Sprintf("Impact: %s\n", rec.Impact))
	}
	if len(rec.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(rec.Skills, ", ")))
	}
	if rec.FilePath != "" {
		sb.WriteString(fmt.Sprintf("File: %s\n", rec.FilePath))
	}
}

// toolError creates an error result for MCP tool responses.
func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

// toolText creates a plain text result for MCP tool responses.
func toolText(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
	}
}
