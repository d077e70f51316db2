// ABOUTME: Tests for record and export MCP tool handlers.
// ABOUTME: Covers add_record, search_records, list_recent_records, and export_log.
package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/worklog/internal/models"
	"github.com/2389-research/worklog/internal/storage"
)

func nowDate() string {
	return time.Now().Format(models.DateLayout)
}

func makeRecordServer(t *testing.T) *Server {
	t.Helper()
	records, err := storage.NewRecordMDStore(filepath.Join(t.TempDir(), "worklog"))
	if err != nil {
		t.Fatalf("NewRecordMDStore error: %v", err)
	}
	server, err := NewServer(records, WithExportDir(t.TempDir()))
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	return server
}

func callTool(t *testing.T, s *Server, name string, args interface{}) *gomcp.CallToolResult {
	t.Helper()
	argsJSON, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("failed to marshal args: %v", err)
	}

	req := &gomcp.CallToolRequest{
		Params: &gomcp.CallToolParamsRaw{
			Name:      name,
			Arguments: argsJSON,
		},
	}

	ctx := context.Background()
	var result *gomcp.CallToolResult

	switch name {
	case "add_record":
		result, err = s.handleAddRecord(ctx, req)
	case "search_records":
		result, err = s.handleSearchRecords(ctx, req)
	case "list_recent_records":
		result, err = s.handleListRecentRecords(ctx, req)
	case "export_log":
		result, err = s.handleExportLog(ctx, req)
	default:
		t.Fatalf("unknown tool %q", name)
	}
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return result
}

func resultText(t *testing.T, result *gomcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := result.Content[0].(*gomcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}

func TestAddRecordTool(t *testing.T) {
	s := makeRecordServer(t)

	result := callTool(t, s, "add_record", map[string]interface{}{
		"date":        "2024-03-15",
		"category":    "achievement",
		"description": "Shipped the exporter",
		"impact":      "Happy users",
		"skills":      []string{"go"},
	})

	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "Record saved") {
		t.Errorf("unexpected result: %s", resultText(t, result))
	}

	records, err := s.records.ListRecords(0, 0)
	if err != nil {
		t.Fatalf("ListRecords error: %v", err)
	}
	if len(records) != 1 || records[0].Description != "Shipped the exporter" {
		t.Errorf("record not persisted: %+v", records)
	}
}

func TestAddRecordToolRejectsBadCategory(t *testing.T) {
	s := makeRecordServer(t)

	result := callTool(t, s, "add_record", map[string]interface{}{
		"date":        "2024-03-15",
		"category":    "vibes",
		"description": "x",
	})
	if !result.IsError {
		t.Error("expected error for invalid category")
	}
}

func TestAddRecordToolRequiresDescription(t *testing.T) {
	s := makeRecordServer(t)

	result := callTool(t, s, "add_record", map[string]interface{}{
		"date":     "2024-03-15",
		"category": "skill",
	})
	if !result.IsError {
		t.Error("expected error for missing description")
	}
}

func TestSearchRecordsTool(t *testing.T) {
	s := makeRecordServer(t)

	callTool(t, s, "add_record", map[string]interface{}{
		"date": "2024-01-01", "category": "skill", "description": "kafka consumer work",
	})
	callTool(t, s, "add_record", map[string]interface{}{
		"date": "2024-01-02", "category": "skill", "description": "css styling",
	})

	result := callTool(t, s, "search_records", map[string]interface{}{"query": "kafka"})
	text := resultText(t, result)
	if !strings.Contains(text, "kafka consumer work") {
		t.Errorf("match missing from result: %s", text)
	}
	if strings.Contains(text, "css styling") {
		t.Errorf("non-match leaked into result: %s", text)
	}
}

func TestSearchRecordsToolNoMatches(t *testing.T) {
	s := makeRecordServer(t)
	result := callTool(t, s, "search_records", map[string]interface{}{"query": "nothing"})
	if !strings.Contains(resultText(t, result), "No matching records") {
		t.Errorf("unexpected result: %s", resultText(t, result))
	}
}

func TestListRecentRecordsTool(t *testing.T) {
	s := makeRecordServer(t)

	// Listing is cut off by directory date, so use today.
	today := nowDate()
	callTool(t, s, "add_record", map[string]interface{}{
		"date": today, "category": "learning", "description": "read the codebase",
	})

	result := callTool(t, s, "list_recent_records", map[string]interface{}{})
	if !strings.Contains(resultText(t, result), "read the codebase") {
		t.Errorf("recent record missing: %s", resultText(t, result))
	}
}

func TestExportLogTool(t *testing.T) {
	s := makeRecordServer(t)

	callTool(t, s, "add_record", map[string]interface{}{
		"date": "2024-01-01", "category": "skill", "description": "entry one",
	})

	outPath := filepath.Join(t.TempDir(), "log.csv")
	result := callTool(t, s, "export_log", map[string]interface{}{
		"format": "csv",
		"path":   outPath,
	})
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("export file not written: %v", err)
	}
	if !strings.Contains(string(data), "entry one") {
		t.Errorf("export content wrong: %s", data)
	}
}

func TestExportLogToolEmptyResult(t *testing.T) {
	s := makeRecordServer(t)

	result := callTool(t, s, "export_log", map[string]interface{}{"format": "csv"})
	if !result.IsError {
		t.Fatal("expected error exporting an empty log")
	}
	if !strings.Contains(resultText(t, result), "no records match") {
		t.Errorf("unexpected message: %s", resultText(t, result))
	}
}

func TestExportLogToolBadDateBound(t *testing.T) {
	s := makeRecordServer(t)

	callTool(t, s, "add_record", map[string]interface{}{
		"date": "2024-01-01", "category": "skill", "description": "entry one",
	})

	result := callTool(t, s, "export_log", map[string]interface{}{
		"format": "csv",
		"from":   "2024-13-99",
	})
	if !result.IsError {
		t.Fatal("expected error for a malformed from date")
	}
	if !strings.Contains(resultText(t, result), "invalid date range") {
		t.Errorf("unexpected message: %s", resultText(t, result))
	}
}

func TestExportLogToolBadFormat(t *testing.T) {
	s := makeRecordServer(t)

	result := callTool(t, s, "export_log", map[string]interface{}{"format": "xml"})
	if !result.IsError {
		t.Error("expected error for unknown format")
	}
}
