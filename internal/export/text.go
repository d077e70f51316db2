// ABOUTME: Flat-text serializer producing a human-readable career log report.
// ABOUTME: One block per record with separator rules, driven by the shared flat block layout.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/2389-research/worklog/internal/models"
)

const textSeparator = "----------------------------------------"

// longDateLayout renders timestamps in a reader-friendly long form.
const longDateLayout = "January 2, 2006 3:04 PM"

// renderText serializes records as a flat text report.
func renderText(records []*models.Record, opts *models.ExportOptions, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("Career Log Export\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", now.Format(longDateLayout)))
	sb.WriteString(fmt.Sprintf("Total records: %d\n", len(records)))
	sb.WriteString(textSeparator + "\n\n")

	for _, rec := range records {
		sb.WriteString(fmt.Sprintf("Date: %s\n", rec.Date))
		sb.WriteString(fmt.Sprintf("Category: %s\n", models.CategoryTitle(rec.Category)))
		project := rec.Project
		if project == "" {
			project = "N/A"
		}
		sb.WriteString(fmt.Sprintf("Project: %s\n", project))
		sb.WriteString(fmt.Sprintf("Description: %s\n", rec.Description))
		if rec.Impact != "" {
			sb.WriteString(fmt.Sprintf("Impact: %s\n", rec.Impact))
		}
		if len(rec.Skills) > 0 {
			sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(rec.Skills, ", ")))
		}
		if len(rec.Tags) > 0 {
			tagged := make([]string, len(rec.Tags))
			for i, t := range rec.Tags {
				tagged[i] = "#" + t
			}
			sb.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(tagged, " ")))
		}
		if opts.IncludeMetadata {
			sb.WriteString("Metadata:\n")
			sb.WriteString(fmt.Sprintf("  ID: %s\n", rec.ID))
			sb.WriteString(fmt.Sprintf("  Created: %s\n", rec.CreatedAt.Format(longDateLayout)))
			sb.WriteString(fmt.Sprintf("  Updated: %s\n", rec.UpdatedAt.Format(longDateLayout)))
		}
		sb.WriteString(textSeparator + "\n\n")
	}

	return sb.String()
}
