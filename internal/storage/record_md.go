// ABOUTME: Markdown-based career record storage.
// ABOUTME: Stores records as markdown files with YAML frontmatter in date-based directories.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/2389-research/worklog/internal/models"
)

// RecordMDStore stores career records as markdown files under a single root.
type RecordMDStore struct {
	root string
}

// recordFrontmatter is the YAML frontmatter for record files.
type recordFrontmatter struct {
	ID        string   `yaml:"id"`
	Date      string   `yaml:"date"`
	Category  string   `yaml:"category"`
	Skills    []string `yaml:"skills,omitempty"`
	Tags      []string `yaml:"tags,omitempty"`
	Project   string   `yaml:"project,omitempty"`
	CreatedAt string   `yaml:"created_at"`
	UpdatedAt string   `yaml:"updated_at"`
}

// NewRecordMDStore creates a record store rooted at the given directory.
func NewRecordMDStore(root string) (*RecordMDStore, error) {
	return &RecordMDStore{root: root}, nil
}

// WriteRecord persists a record under <root>/<date>/<time>-<shortid>.md.
func (s *RecordMDStore) WriteRecord(rec *models.Record) error {
	timeStr := rec.CreatedAt.Format("15-04-05-000000")
	shortID := rec.ID.String()[:8]
	filename := timeStr + "-" + shortID + ".md"
	path := filepath.Join(s.root, rec.Date, filename)

	fm := recordFrontmatter{
		ID:        rec.ID.String(),
		Date:      rec.Date,
		Category:  rec.Category,
		Skills:    rec.Skills,
		Tags:      rec.Tags,
		Project:   rec.Project,
		CreatedAt: formatTime(rec.CreatedAt),
		UpdatedAt: formatTime(rec.UpdatedAt),
	}

	body := renderRecordBody(rec)

	content, err := renderFrontmatter(fm, body)
	if err != nil {
		return fmt.Errorf("failed to render record: %w", err)
	}

	if err := atomicWrite(path, []byte(content)); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	rec.FilePath = path
	return nil
}

// ReadRecord reads a record from the given file path.
// The path must be within the store root.
func (s *RecordMDStore) ReadRecord(path string) (*models.Record, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	absRoot, _ := filepath.Abs(s.root)
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return nil, fmt.Errorf("path %q is outside the log root", path)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	return parseRecordFile(absPath, string(data))
}

// ListRecords lists records sorted by date descending, creation time as
// tiebreak. days limits how far back to look by directory date (0 = no limit).
func (s *RecordMDStore) ListRecords(limit int, days int) ([]*models.Record, error) {
	if _, err := os.Stat(s.root); os.IsNotExist(err) {
		return nil, nil
	}

	var cutoff time.Time
	if days > 0 {
		cutoff = time.Now().AddDate(0, 0, -days).Truncate(24 * time.Hour)
	}

	dateDirs, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list log root: %w", err)
	}

	var records []*models.Record
	for _, dateDir := range dateDirs {
		if !dateDir.IsDir() {
			continue
		}

		if !cutoff.IsZero() {
			dirDate, err := time.Parse(models.DateLayout, dateDir.Name())
			if err != nil {
				continue
			}
			if dirDate.Before(cutoff) {
				continue
			}
		}

		dirPath := filepath.Join(s.root, dateDir.Name())
		files, err := os.ReadDir(dirPath)
		if err != nil {
			continue
		}

		for _, file := range files {
			if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
				continue
			}

			filePath := filepath.Join(dirPath, file.Name())
			data, err := os.ReadFile(filePath)
			if err != nil {
				continue
			}

			rec, err := parseRecordFile(filePath, string(data))
			if err != nil {
				continue
			}

			records = append(records, rec)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date > records[j].Date
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

// Close releases any resources held by the store.
func (s *RecordMDStore) Close() error {
	return nil
}

// parseRecordFile parses a markdown file into a Record.
func parseRecordFile(path string, content string) (*models.Record, error) {
	yamlStr, body := parseFrontmatter(content)
	if yamlStr == "" {
		return nil, fmt.Errorf("no frontmatter found in %s", path)
	}

	var fm recordFrontmatter
	if err := yaml.Unmarshal([]byte(yamlStr), &fm); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	id, err := uuid.Parse(fm.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID in frontmatter: %w", err)
	}

	if _, err := time.Parse(models.DateLayout, fm.Date); err != nil {
		return nil, fmt.Errorf("invalid date in frontmatter: %w", err)
	}

	createdAt, err := parseTime(fm.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at in frontmatter: %w", err)
	}
	updatedAt, err := parseTime(fm.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid updated_at in frontmatter: %w", err)
	}

	description, impact := parseRecordBody(body)

	return &models.Record{
		ID:          id,
		Date:        fm.Date,
		Category:    fm.Category,
		Description: description,
		Impact:      impact,
		Skills:      fm.Skills,
		Tags:        fm.Tags,
		Project:     fm.Project,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		FilePath:    path,
	}, nil
}

// renderRecordBody converts the free-text fields to markdown body text.
func renderRecordBody(rec *models.Record) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n## Description\n%s\n", rec.Description))
	if rec.Impact != "" {
		sb.WriteString(fmt.Sprintf("\n## Impact\n%s\n", rec.Impact))
	}
	return sb.String()
}

// parseRecordBody extracts the description and impact sections from body text.
func parseRecordBody(body string) (description, impact string) {
	sections := make(map[string]string)
	lines := strings.Split(body, "\n")

	var current string
	var content strings.Builder

	flush := func() {
		if current != "" {
			sections[current] = strings.TrimSpace(content.String())
		}
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "## ") {
			flush()
			current = strings.ToLower(strings.TrimPrefix(line, "## "))
			content.Reset()
		} else if current != "" {
			content.WriteString(line)
			content.WriteString("\n")
		}
	}
	flush()

	return sections["description"], sections["impact"]
}
