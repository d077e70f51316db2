// ABOUTME: Pure input validation for the export wizard fields.
// ABOUTME: Checks calendar dates, format names, and date-range ordering.
package tui

import (
	"fmt"
	"time"

	"github.com/2389-research/worklog/internal/models"
)

// ValidateDate checks an optional wizard date field. Empty is allowed
// (the bound is simply omitted); anything else must be a calendar date.
func ValidateDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(models.DateLayout, value); err != nil {
		return fmt.Errorf("not a valid date (expected YYYY-MM-DD): %q", value)
	}
	return nil
}

// ValidateFormat checks a wizard format field. Empty is allowed and means
// the caller's default applies.
func ValidateFormat(value string) error {
	if value == "" {
		return nil
	}
	_, err := models.ParseFormat(value)
	return err
}

// ValidateRange checks that a complete date range is ordered.
func ValidateRange(from, to string) error {
	if from == "" || to == "" {
		return nil
	}
	if from > to {
		return fmt.Errorf("range start %s is after end %s", from, to)
	}
	return nil
}
