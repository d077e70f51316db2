// ABOUTME: Typed failure kinds for the export coordinator.
// ABOUTME: Callers branch with errors.Is/errors.As; no generic panics cross this boundary.
package export

import (
	"errors"
	"fmt"

	"github.com/2389-research/worklog/internal/models"
)

// ErrNoRecords reports that filtering produced zero records. The export is
// aborted before any serializer runs; an empty file is never produced.
var ErrNoRecords = errors.New("no records match the export filters")

// ErrUnsupportedFormat reports a format outside the known enumeration.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ErrInvalidDateRange reports a malformed FromDate or ToDate bound. A bad
// bound aborts the export rather than degrading to an unbounded filter.
var ErrInvalidDateRange = errors.New("invalid date range")

// RenderError reports a failure inside the layout or markup stage for a
// document target. The coordinator never substitutes another format; a
// retry with flat text is caller policy.
type RenderError struct {
	Format models.ExportFormat
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s export failed: %v", e.Format, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
