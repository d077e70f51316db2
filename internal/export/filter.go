// ABOUTME: Record filtering for exports with date-range, category, and selection predicates.
// ABOUTME: All supplied predicates apply conjunctively; results sort newest-first with stable ties.
package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/2389-research/worklog/internal/models"
)

// FilterRecords returns the records matching every predicate supplied in opts,
// sorted by date descending. The sort is stable so records sharing a date keep
// their encounter order. A malformed range bound returns ErrInvalidDateRange
// instead of widening the filter. Record dates are assumed well-formed;
// records whose date fails to parse are excluded rather than sorted
// unpredictably.
func FilterRecords(records []*models.Record, opts *models.ExportOptions) ([]*models.Record, error) {
	var from, to time.Time
	var err error
	if opts.FromDate != "" {
		from, err = time.Parse(models.DateLayout, opts.FromDate)
		if err != nil {
			return nil, fmt.Errorf("%w: from date %q", ErrInvalidDateRange, opts.FromDate)
		}
	}
	if opts.ToDate != "" {
		to, err = time.Parse(models.DateLayout, opts.ToDate)
		if err != nil {
			return nil, fmt.Errorf("%w: to date %q", ErrInvalidDateRange, opts.ToDate)
		}
	}

	allowed := make(map[string]bool, len(opts.Categories))
	for _, c := range opts.Categories {
		allowed[c] = true
	}

	type dated struct {
		rec  *models.Record
		date time.Time
	}

	var kept []dated
	for _, rec := range records {
		d, err := rec.ParsedDate()
		if err != nil {
			continue
		}
		if !from.IsZero() && d.Before(from) {
			continue
		}
		if !to.IsZero() && d.After(to) {
			continue
		}
		if len(allowed) > 0 && !allowed[rec.Category] {
			continue
		}
		if opts.SelectedOnly && !opts.Selected[rec.ID.String()] {
			continue
		}
		kept = append(kept, dated{rec: rec, date: d})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].date.After(kept[j].date)
	})

	result := make([]*models.Record, len(kept))
	for i, k := range kept {
		result[i] = k.rec
	}
	return result, nil
}
