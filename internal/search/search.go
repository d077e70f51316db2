// ABOUTME: Keyword search over career records with field-weighted scoring.
// ABOUTME: Results sort by score descending with date-descending tiebreak.
package search

import (
	"sort"
	"strings"

	"github.com/2389-research/worklog/internal/models"
)

// Result pairs a record with its relevance score.
type Result struct {
	Record *models.Record
	Score  float64
}

// Options configures a search operation.
type Options struct {
	Limit      int
	Categories []string // category filter; empty means all
}

// Field weights: a hit in the description counts most, impact next,
// the short structured fields least.
const (
	descriptionWeight = 3.0
	impactWeight      = 2.0
	fieldWeight       = 1.0
)

// Search scores records against the query terms and returns the top matches.
// Records matching no term are excluded.
func Search(records []*models.Record, query string, opts Options) []Result {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	allowed := make(map[string]bool, len(opts.Categories))
	for _, c := range opts.Categories {
		allowed[c] = true
	}

	var results []Result
	for _, rec := range records {
		if len(allowed) > 0 && !allowed[rec.Category] {
			continue
		}
		score := scoreRecord(rec, terms)
		if score > 0 {
			results = append(results, Result{Record: rec, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Record.Date > results[j].Record.Date
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > len(results) {
		limit = len(results)
	}
	return results[:limit]
}

// scoreRecord sums the field weights of every term found in the record.
func scoreRecord(rec *models.Record, terms []string) float64 {
	description := strings.ToLower(rec.Description)
	impact := strings.ToLower(rec.Impact)
	fields := strings.ToLower(strings.Join(rec.Skills, " ") + " " +
		strings.Join(rec.Tags, " ") + " " + rec.Project + " " + rec.Category)

	var score float64
	for _, term := range terms {
		if strings.Contains(description, term) {
			score += descriptionWeight
		}
		if strings.Contains(impact, term) {
			score += impactWeight
		}
		if strings.Contains(fields, term) {
			score += fieldWeight
		}
	}
	return score
}
