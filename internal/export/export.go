// ABOUTME: Export coordinator dispatching filtered records to the per-format backends.
// ABOUTME: Pure request/response pipeline; saving the returned bytes is the caller's job.
package export

import (
	"fmt"
	"time"

	"github.com/2389-research/worklog/internal/models"
)

// documentTitle heads the PDF and RTF exports.
const documentTitle = "Career Log Export"

// Export filters the given records and serializes them in the requested
// format. It returns ErrInvalidDateRange for a malformed range bound,
// ErrNoRecords when the filter leaves nothing to export, ErrUnsupportedFormat
// for an unknown format, and a RenderError when a document backend fails. It
// never writes to disk.
func Export(records []*models.Record, opts *models.ExportOptions) (*models.ExportResult, error) {
	return runExport(records, opts, time.Now())
}

// runExport is Export with an injectable clock for the generated timestamps
// and the derived default filename.
func runExport(records []*models.Record, opts *models.ExportOptions, now time.Time) (*models.ExportResult, error) {
	filtered, err := FilterRecords(records, opts)
	if err != nil {
		return nil, err
	}
	if len(filtered) == 0 {
		return nil, ErrNoRecords
	}

	base := resolveFilename(opts, now)

	var content []byte
	switch opts.Format {
	case models.FormatCSV:
		content = []byte(renderCSV(filtered, opts))

	case models.FormatJSON:
		s, err := renderJSON(filtered, opts, now)
		if err != nil {
			return nil, err
		}
		content = []byte(s)

	case models.FormatText:
		content = []byte(renderText(filtered, opts, now))

	case models.FormatPDF:
		stream := RenderGrouped(filtered, opts)
		layout, err := layoutChecked(stream, A4Geometry)
		if err != nil {
			return nil, &RenderError{Format: opts.Format, Err: err}
		}
		content = renderPDF(layout, A4Geometry)

	case models.FormatDocx:
		stream := RenderFlat(filtered, opts, now)
		content = []byte(renderRTF(stream, documentTitle))

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}

	return &models.ExportResult{
		Data:      content,
		Filename:  base + "." + opts.Format.Extension(),
		MediaType: opts.Format.MediaType(),
	}, nil
}

// layoutChecked validates the page geometry before running the layout engine.
func layoutChecked(lines []Line, geo Geometry) (LayoutResult, error) {
	if geo.PageWidth-2*geo.Margin <= 0 || geo.PageHeight-2*geo.Margin <= 0 || geo.LineHeight <= 0 {
		return LayoutResult{}, fmt.Errorf("unprintable page geometry %+v", geo)
	}
	return LayoutStream(lines, geo), nil
}

// resolveFilename returns the filename without extension. An explicit name
// wins; otherwise a default is derived from the current date, prefixed with
// "selected-" when the selection filter is active and non-empty.
func resolveFilename(opts *models.ExportOptions, now time.Time) string {
	if opts.Filename != "" {
		return opts.Filename
	}
	name := "career-log-" + now.Format(models.DateLayout)
	if opts.HasSelection() {
		name = "selected-" + name
	}
	return name
}
