// ABOUTME: CSV serializer for filtered career records.
// ABOUTME: Emits a fixed header row and one fully-quoted data row per record.
package export

import (
	"strings"

	"github.com/2389-research/worklog/internal/models"
)

var csvColumns = []string{"Date", "Category", "Description", "Impact", "Skills", "Tags", "Project"}
var csvMetaColumns = []string{"Created At", "Updated At", "ID"}

// renderCSV serializes records to CSV in filtered order. Every field is
// double-quoted; encoding/csv quotes only when it has to, which would break
// the always-quoted contract, so rows are assembled directly.
func renderCSV(records []*models.Record, opts *models.ExportOptions) string {
	columns := csvColumns
	if opts.IncludeMetadata {
		columns = append(append([]string{}, csvColumns...), csvMetaColumns...)
	}

	var sb strings.Builder
	writeCSVRow(&sb, columns)

	for _, rec := range records {
		fields := []string{
			rec.Date,
			rec.Category,
			rec.Description,
			rec.Impact,
			strings.Join(rec.Skills, "; "),
			strings.Join(rec.Tags, "; "),
			rec.Project,
		}
		if opts.IncludeMetadata {
			fields = append(fields,
				rec.CreatedAt.Format("2006-01-02 15:04:05"),
				rec.UpdatedAt.Format("2006-01-02 15:04:05"),
				rec.ID.String(),
			)
		}
		writeCSVRow(&sb, fields)
	}

	return sb.String()
}

func writeCSVRow(sb *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(escapeCSV(f))
	}
	sb.WriteString("\n")
}
