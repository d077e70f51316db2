// ABOUTME: Narrative renderer producing the typed Content Stream for document backends.
// ABOUTME: Flat mode mirrors the text report; grouped mode sections records by category.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/2389-research/worklog/internal/models"
)

// LineKind tags one Content Stream line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineHeader
	LineBullet
	LineParagraph
)

// Line is one typed line in the Content Stream shared by the document backends.
type Line struct {
	Kind LineKind
	Text string
}

func blank() Line             { return Line{Kind: LineBlank} }
func header(text string) Line { return Line{Kind: LineHeader, Text: text} }
func bullet(text string) Line { return Line{Kind: LineBullet, Text: text} }
func para(text string) Line   { return Line{Kind: LineParagraph, Text: text} }

// localDate renders a record date in short localized form, falling back to the
// raw string for a date that somehow escaped validation.
func localDate(rec *models.Record) string {
	d, err := rec.ParsedDate()
	if err != nil {
		return rec.Date
	}
	return d.Format("Jan 2, 2006")
}

// RenderFlat produces the flat-mode Content Stream: a title block followed by
// one block per record in filtered order, matching the text report structure.
func RenderFlat(records []*models.Record, opts *models.ExportOptions, now time.Time) []Line {
	lines := []Line{
		para("Career Log Export"),
		para(fmt.Sprintf("Generated: %s", now.Format(longDateLayout))),
		para(fmt.Sprintf("Total records: %d", len(records))),
		blank(),
	}

	for _, rec := range records {
		lines = append(lines,
			para(fmt.Sprintf("Date: %s", rec.Date)),
			para(fmt.Sprintf("Category: %s", models.CategoryTitle(rec.Category))),
		)
		project := rec.Project
		if project == "" {
			project = "N/A"
		}
		lines = append(lines,
			para(fmt.Sprintf("Project: %s", project)),
			para(fmt.Sprintf("Description: %s", rec.Description)),
		)
		if rec.Impact != "" {
			lines = append(lines, para(fmt.Sprintf("Impact: %s", rec.Impact)))
		}
		if len(rec.Skills) > 0 {
			lines = append(lines, para(fmt.Sprintf("Skills: %s", strings.Join(rec.Skills, ", "))))
		}
		if len(rec.Tags) > 0 {
			tagged := make([]string, len(rec.Tags))
			for i, t := range rec.Tags {
				tagged[i] = "#" + t
			}
			lines = append(lines, para(fmt.Sprintf("Tags: %s", strings.Join(tagged, " "))))
		}
		if opts.IncludeMetadata {
			lines = append(lines,
				para(fmt.Sprintf("ID: %s", rec.ID)),
				para(fmt.Sprintf("Created: %s", rec.CreatedAt.Format(longDateLayout))),
				para(fmt.Sprintf("Updated: %s", rec.UpdatedAt.Format(longDateLayout))),
			)
		}
		lines = append(lines, blank())
	}

	return lines
}

// RenderGrouped produces the grouped-mode Content Stream: records sectioned by
// category in first-encountered order, each group under an upper-cased header
// with its member count.
func RenderGrouped(records []*models.Record, opts *models.ExportOptions) []Line {
	var order []string
	groups := make(map[string][]*models.Record)
	for _, rec := range records {
		if _, seen := groups[rec.Category]; !seen {
			order = append(order, rec.Category)
		}
		groups[rec.Category] = append(groups[rec.Category], rec)
	}

	var lines []Line
	for _, category := range order {
		members := groups[category]
		lines = append(lines, header(fmt.Sprintf("%s (%d)", strings.ToUpper(category), len(members))))

		for i, rec := range members {
			lines = append(lines, bullet(fmt.Sprintf("%d. %s: %s", i+1, localDate(rec), rec.Description)))
			if rec.Impact != "" {
				lines = append(lines, para(fmt.Sprintf("Impact: %s", rec.Impact)))
			}
			if rec.Project != "" {
				lines = append(lines, para(fmt.Sprintf("Project: %s", rec.Project)))
			}
			if len(rec.Skills) > 0 {
				lines = append(lines, para(fmt.Sprintf("Skills: %s", strings.Join(rec.Skills, ", "))))
			}
			if opts.IncludeMetadata {
				lines = append(lines, para(fmt.Sprintf("ID: %s", rec.ID)))
			}
		}

		lines = append(lines, blank())
	}

	return lines
}
