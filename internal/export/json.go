// ABOUTME: JSON serializer for filtered career records.
// ABOUTME: Wraps records in an envelope with export timestamp and total count.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/2389-research/worklog/internal/models"
)

// jsonEnvelope is the top-level object shape of a JSON export.
type jsonEnvelope struct {
	ExportedAt string       `json:"exported_at"`
	Total      int          `json:"total"`
	Records    []jsonRecord `json:"records"`
}

// jsonRecord is one record as serialized. The metadata fields are omitted
// entirely when metadata inclusion is off.
type jsonRecord struct {
	ID          string   `json:"id,omitempty"`
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Impact      string   `json:"impact,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Project     string   `json:"project,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// renderJSON serializes records to a pretty-printed JSON envelope.
func renderJSON(records []*models.Record, opts *models.ExportOptions, now time.Time) (string, error) {
	env := jsonEnvelope{
		ExportedAt: now.Format(time.RFC3339),
		Total:      len(records),
		Records:    make([]jsonRecord, 0, len(records)),
	}

	for _, rec := range records {
		jr := jsonRecord{
			Date:        rec.Date,
			Category:    rec.Category,
			Description: rec.Description,
			Impact:      rec.Impact,
			Skills:      rec.Skills,
			Tags:        rec.Tags,
			Project:     rec.Project,
		}
		if opts.IncludeMetadata {
			jr.ID = rec.ID.String()
			jr.CreatedAt = rec.CreatedAt.Format(time.RFC3339)
			jr.UpdatedAt = rec.UpdatedAt.Format(time.RFC3339)
		}
		env.Records = append(env.Records, jr)
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal export: %w", err)
	}
	return string(data) + "\n", nil
}
