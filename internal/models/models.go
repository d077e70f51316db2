// ABOUTME: Core data models for career log records and export requests.
// ABOUTME: Provides constructor functions, category/format enumerations, and validation helpers.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used by record dates and range bounds.
const DateLayout = "2006-01-02"

// Record represents one user-entered career log item.
type Record struct {
	ID          uuid.UUID
	Date        string // calendar date, DateLayout
	Category    string
	Description string
	Impact      string
	Skills      []string
	Tags        []string
	Project     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	FilePath    string
}

// ValidCategories lists the allowed record categories.
var ValidCategories = []string{
	"achievement",
	"project",
	"skill",
	"leadership",
	"learning",
	"feedback",
}

// IsValidCategory returns true if the given category name is valid.
func IsValidCategory(name string) bool {
	for _, c := range ValidCategories {
		if c == name {
			return true
		}
	}
	return false
}

// CategoryTitle capitalizes a category name for presentation.
func CategoryTitle(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// NewRecord creates a record with generated UUID and timestamps.
// The date must be a valid calendar date and the category must be known.
func NewRecord(date, category, description string) (*Record, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	if !IsValidCategory(category) {
		return nil, fmt.Errorf("invalid category %q (valid: %s)", category, strings.Join(ValidCategories, ", "))
	}
	now := time.Now()
	return &Record{
		ID:          uuid.New(),
		Date:        date,
		Category:    category,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ParsedDate returns the record date as a time.Time.
// Dates are validated at construction and load time, so a failure here
// means the record bypassed validation.
func (r *Record) ParsedDate() (time.Time, error) {
	return time.Parse(DateLayout, r.Date)
}

// ExportFormat identifies one of the supported export targets.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
	FormatText ExportFormat = "txt"
	FormatPDF  ExportFormat = "pdf"
	FormatDocx ExportFormat = "docx" // emitted as RTF, see Extension
)

// ValidFormats lists the supported export formats.
var ValidFormats = []ExportFormat{FormatCSV, FormatJSON, FormatText, FormatPDF, FormatDocx}

// ParseFormat converts a format name to an ExportFormat.
func ParseFormat(name string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(name))
	for _, v := range ValidFormats {
		if f == v {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (valid: csv, json, txt, pdf, docx)", name)
}

// Extension returns the file extension for the format, without a leading dot.
// The docx target writes RTF bytes, so its files are named honestly as .rtf.
func (f ExportFormat) Extension() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatText:
		return "txt"
	case FormatPDF:
		return "pdf"
	case FormatDocx:
		return "rtf"
	}
	return ""
}

// MediaType returns the declared media type for the format.
func (f ExportFormat) MediaType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatText:
		return "text/plain;charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatDocx:
		return "application/rtf"
	}
	return "application/octet-stream"
}

// ExportOptions configures one export request.
type ExportOptions struct {
	Format          ExportFormat
	Filename        string // explicit filename (without extension); empty means derived
	IncludeMetadata bool   // include id and timestamps in the output
	FromDate        string // inclusive lower bound, DateLayout; empty means unbounded
	ToDate          string // inclusive upper bound, DateLayout; empty means unbounded
	Categories      []string
	SelectedOnly    bool
	Selected        map[string]bool // record IDs, consulted when SelectedOnly is set
}

// HasSelection returns true when the selection filter is active and non-empty.
func (o *ExportOptions) HasSelection() bool {
	return o.SelectedOnly && len(o.Selected) > 0
}

// ExportResult is the byte payload produced by a successful export.
type ExportResult struct {
	Data      []byte
	Filename  string // includes the format extension
	MediaType string
}
