// ABOUTME: Tests for markdown-based record storage.
// ABOUTME: Covers write/read roundtrip, date ordering, limits, cutoffs, and body parsing.
package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/2389-research/worklog/internal/models"
)

func newTestStore(t *testing.T) *RecordMDStore {
	t.Helper()
	store, err := NewRecordMDStore(filepath.Join(t.TempDir(), "worklog"))
	if err != nil {
		t.Fatalf("NewRecordMDStore error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func mustRecord(t *testing.T, date, category, description string) *models.Record {
	t.Helper()
	rec, err := models.NewRecord(date, category, description)
	if err != nil {
		t.Fatalf("NewRecord error: %v", err)
	}
	return rec
}

func TestRecordWriteReadRoundtrip(t *testing.T) {
	store := newTestStore(t)

	rec := mustRecord(t, "2024-03-15", "achievement", "Shipped the export pipeline")
	rec.Impact = "Unblocked three teams"
	rec.Skills = []string{"go", "pdf"}
	rec.Tags = []string{"milestone"}
	rec.Project = "worklog"

	if err := store.WriteRecord(rec); err != nil {
		t.Fatalf("WriteRecord error: %v", err)
	}
	if rec.FilePath == "" {
		t.Fatal("expected FilePath to be set after write")
	}
	if _, err := os.Stat(rec.FilePath); os.IsNotExist(err) {
		t.Fatalf("record file not created at %s", rec.FilePath)
	}

	read, err := store.ReadRecord(rec.FilePath)
	if err != nil {
		t.Fatalf("ReadRecord error: %v", err)
	}

	if read.ID != rec.ID {
		t.Errorf("ID mismatch: got %s, want %s", read.ID, rec.ID)
	}
	if read.Date != rec.Date {
		t.Errorf("Date mismatch: got %s, want %s", read.Date, rec.Date)
	}
	if read.Category != rec.Category {
		t.Errorf("Category mismatch: got %s, want %s", read.Category, rec.Category)
	}
	if read.Description != rec.Description {
		t.Errorf("Description mismatch: got %q, want %q", read.Description, rec.Description)
	}
	if read.Impact != rec.Impact {
		t.Errorf("Impact mismatch: got %q, want %q", read.Impact, rec.Impact)
	}
	if strings.Join(read.Skills, ",") != strings.Join(rec.Skills, ",") {
		t.Errorf("Skills mismatch: got %v, want %v", read.Skills, rec.Skills)
	}
	if read.Project != "worklog" {
		t.Errorf("Project mismatch: got %q", read.Project)
	}
}

func TestRecordWithoutImpact(t *testing.T) {
	store := newTestStore(t)

	rec := mustRecord(t, "2024-03-15", "skill", "Learned generics")
	if err := store.WriteRecord(rec); err != nil {
		t.Fatalf("WriteRecord error: %v", err)
	}

	read, err := store.ReadRecord(rec.FilePath)
	if err != nil {
		t.Fatalf("ReadRecord error: %v", err)
	}
	if read.Impact != "" {
		t.Errorf("expected empty impact, got %q", read.Impact)
	}
	if read.Description != "Learned generics" {
		t.Errorf("description: got %q", read.Description)
	}
}

func TestRecordFileStoredUnderDateDir(t *testing.T) {
	store := newTestStore(t)

	rec := mustRecord(t, "2024-07-04", "project", "desc")
	if err := store.WriteRecord(rec); err != nil {
		t.Fatalf("WriteRecord error: %v", err)
	}
	if !strings.Contains(rec.FilePath, string(filepath.Separator)+"2024-07-04"+string(filepath.Separator)) {
		t.Errorf("record path %s not under its date directory", rec.FilePath)
	}
}

func TestReadRecordOutsideRootRejected(t *testing.T) {
	store := newTestStore(t)

	outside := filepath.Join(t.TempDir(), "elsewhere.md")
	if err := os.WriteFile(outside, []byte("x"), 0600); err != nil {
		t.Fatalf("setup error: %v", err)
	}
	if _, err := store.ReadRecord(outside); err == nil {
		t.Error("expected error reading a path outside the log root")
	}
}

func TestListRecordsNewestFirst(t *testing.T) {
	store := newTestStore(t)

	dates := []string{"2024-02-01", "2024-05-01", "2024-03-01"}
	for _, d := range dates {
		rec := mustRecord(t, d, "skill", "entry for "+d)
		if err := store.WriteRecord(rec); err != nil {
			t.Fatalf("WriteRecord error: %v", err)
		}
	}

	records, err := store.ListRecords(0, 0)
	if err != nil {
		t.Fatalf("ListRecords error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	want := []string{"2024-05-01", "2024-03-01", "2024-02-01"}
	for i, w := range want {
		if records[i].Date != w {
			t.Errorf("position %d: got %s, want %s", i, records[i].Date, w)
		}
	}
}

func TestListRecordsLimit(t *testing.T) {
	store := newTestStore(t)

	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		if err := store.WriteRecord(mustRecord(t, d, "skill", "x")); err != nil {
			t.Fatalf("WriteRecord error: %v", err)
		}
	}

	records, err := store.ListRecords(2, 0)
	if err != nil {
		t.Fatalf("ListRecords error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected limit of 2, got %d", len(records))
	}
}

func TestListRecordsEmptyRoot(t *testing.T) {
	store, err := NewRecordMDStore(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("NewRecordMDStore error: %v", err)
	}
	records, err := store.ListRecords(0, 0)
	if err != nil {
		t.Fatalf("ListRecords error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records from missing root, got %d", len(records))
	}
}

func TestListRecordsSkipsMalformedFiles(t *testing.T) {
	store := newTestStore(t)

	good := mustRecord(t, "2024-01-01", "skill", "good")
	if err := store.WriteRecord(good); err != nil {
		t.Fatalf("WriteRecord error: %v", err)
	}

	// Drop a file without frontmatter next to the good one.
	bad := filepath.Join(filepath.Dir(good.FilePath), "junk.md")
	if err := os.WriteFile(bad, []byte("no frontmatter here"), 0600); err != nil {
		t.Fatalf("setup error: %v", err)
	}

	records, err := store.ListRecords(0, 0)
	if err != nil {
		t.Fatalf("ListRecords error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected malformed file skipped, got %d records", len(records))
	}
}
