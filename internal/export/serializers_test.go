// ABOUTME: Tests for the CSV, JSON, and flat-text serializers.
// ABOUTME: Covers row counts, quoting round-trips, metadata stripping, and report blocks.
package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/2389-research/worklog/internal/models"
)

var testNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func TestRenderCSVRowOrder(t *testing.T) {
	records := []*models.Record{
		testRecord(t, "2024-01-01", "skill", "first"),
		testRecord(t, "2024-03-01", "project", "second"),
		testRecord(t, "2024-02-01", "skill", "third"),
	}
	filtered := mustFilter(t, records, &models.ExportOptions{})

	out := renderCSV(filtered, &models.ExportOptions{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], `"Date","Category"`) {
		t.Errorf("unexpected header row: %s", lines[0])
	}

	wantOrder := []string{"2024-03-01", "2024-02-01", "2024-01-01"}
	for i, want := range wantOrder {
		if !strings.HasPrefix(lines[i+1], `"`+want+`"`) {
			t.Errorf("row %d: got %s, want date %s", i+1, lines[i+1], want)
		}
	}
}

func TestRenderCSVQuoteAndNewlineRoundTrip(t *testing.T) {
	rec := testRecord(t, "2024-01-01", "skill", "said \"ship it\"\nthen did")

	out := renderCSV([]*models.Record{rec}, &models.ExportOptions{})

	// The standard reader must recover the field exactly.
	r := csv.NewReader(strings.NewReader(out))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("csv.ReadAll error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1][2] != rec.Description {
		t.Errorf("description round-trip: got %q, want %q", rows[1][2], rec.Description)
	}
	if !strings.Contains(out, `""ship it""`) {
		t.Errorf("interior quotes not doubled in %q", out)
	}
}

func TestRenderCSVMetadataColumns(t *testing.T) {
	rec := testRecord(t, "2024-01-01", "skill", "desc")

	without := renderCSV([]*models.Record{rec}, &models.ExportOptions{})
	if strings.Contains(without, `"ID"`) {
		t.Error("metadata columns present without IncludeMetadata")
	}

	with := renderCSV([]*models.Record{rec}, &models.ExportOptions{IncludeMetadata: true})
	header := strings.SplitN(with, "\n", 2)[0]
	for _, col := range []string{`"Created At"`, `"Updated At"`, `"ID"`} {
		if !strings.Contains(header, col) {
			t.Errorf("missing metadata column %s in header %s", col, header)
		}
	}
	if !strings.Contains(with, rec.ID.String()) {
		t.Error("record ID missing from metadata row")
	}
}

func TestRenderJSONMetadataStripping(t *testing.T) {
	rec := testRecord(t, "2024-01-01", "skill", "desc")
	rec.Impact = "big"
	rec.Skills = []string{"go", "sql"}

	out, err := renderJSON([]*models.Record{rec}, &models.ExportOptions{}, testNow)
	if err != nil {
		t.Fatalf("renderJSON error: %v", err)
	}

	var env struct {
		ExportedAt string                   `json:"exported_at"`
		Total      int                      `json:"total"`
		Records    []map[string]interface{} `json:"records"`
	}
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if env.Total != 1 || len(env.Records) != 1 {
		t.Fatalf("envelope counts wrong: total=%d records=%d", env.Total, len(env.Records))
	}
	for _, key := range []string{"id", "created_at", "updated_at"} {
		if _, ok := env.Records[0][key]; ok {
			t.Errorf("metadata key %q present with IncludeMetadata off", key)
		}
	}
	if env.Records[0]["impact"] != "big" {
		t.Errorf("impact missing: %v", env.Records[0])
	}
}

func TestRenderJSONMetadataIncluded(t *testing.T) {
	rec := testRecord(t, "2024-01-01", "skill", "desc")

	out, err := renderJSON([]*models.Record{rec}, &models.ExportOptions{IncludeMetadata: true}, testNow)
	if err != nil {
		t.Fatalf("renderJSON error: %v", err)
	}

	var env struct {
		Records []map[string]interface{} `json:"records"`
	}
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	got := env.Records[0]
	if got["id"] != rec.ID.String() {
		t.Errorf("id: got %v, want %s", got["id"], rec.ID)
	}
	if got["created_at"] != rec.CreatedAt.Format(time.RFC3339) {
		t.Errorf("created_at: got %v", got["created_at"])
	}
	if got["updated_at"] != rec.UpdatedAt.Format(time.RFC3339) {
		t.Errorf("updated_at: got %v", got["updated_at"])
	}
}

func TestRenderTextReport(t *testing.T) {
	rec := testRecord(t, "2024-01-01", "skill", "Learned Go generics")
	rec.Impact = "Cut boilerplate in half"
	rec.Skills = []string{"go"}
	rec.Tags = []string{"learning", "backend"}

	out := renderText([]*models.Record{rec}, &models.ExportOptions{}, testNow)

	for _, want := range []string{
		"Career Log Export",
		"Total records: 1",
		"Date: 2024-01-01",
		"Category: Skill",
		"Project: N/A",
		"Description: Learned Go generics",
		"Impact: Cut boilerplate in half",
		"Skills: go",
		"Tags: #learning #backend",
		textSeparator,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Metadata:") {
		t.Error("metadata block present without IncludeMetadata")
	}
}

func TestRenderTextOmitsEmptyFields(t *testing.T) {
	rec := testRecord(t, "2024-01-01", "skill", "desc")
	out := renderText([]*models.Record{rec}, &models.ExportOptions{}, testNow)

	if strings.Contains(out, "Impact:") {
		t.Error("empty impact line emitted")
	}
	if strings.Contains(out, "Skills:") {
		t.Error("empty skills line emitted")
	}
	if strings.Contains(out, "Tags:") {
		t.Error("empty tags line emitted")
	}
}

func TestRenderTextMetadataBlock(t *testing.T) {
	rec := testRecord(t, "2024-01-01", "skill", "desc")
	out := renderText([]*models.Record{rec}, &models.ExportOptions{IncludeMetadata: true}, testNow)

	if !strings.Contains(out, "Metadata:") {
		t.Fatal("metadata block missing")
	}
	if !strings.Contains(out, "  ID: "+rec.ID.String()) {
		t.Error("indented ID line missing")
	}
	if !strings.Contains(out, "  Created: ") || !strings.Contains(out, "  Updated: ") {
		t.Error("indented timestamp lines missing")
	}
}
