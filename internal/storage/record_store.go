// ABOUTME: Interface definition for career record storage.
// ABOUTME: Defines the contract for reading, writing, and listing records.
package storage

import (
	"github.com/2389-research/worklog/internal/models"
)

// RecordStore defines operations for career record persistence.
type RecordStore interface {
	// WriteRecord persists a record to disk.
	WriteRecord(rec *models.Record) error

	// ReadRecord reads a record from the given file path.
	ReadRecord(path string) (*models.Record, error)

	// ListRecords lists records sorted newest-first.
	// limit caps the number of results. days limits how far back to look (0 = no limit).
	ListRecords(limit int, days int) ([]*models.Record, error)

	// Close releases any resources held by the store.
	Close() error
}
