// ABOUTME: HistoryStore interface defining the persistence contract
// ABOUTME: Implemented by the SQLite store, faked in core tests
package storage

import "github.com/harper/cinematch/internal/models"

// HistoryStore is the append-only log of past recommendation requests.
// Entries are immutable after Append; no update operation exists. Mutating
// operations are serialized relative to each other and to reads.
type HistoryStore interface {
	// Append assigns the next id to entry and stores it.
	Append(entry *models.HistoryEntry) (int64, error)

	// List returns entries most recent first, without their recommendation
	// lists. A limit of zero or less means no limit.
	List(limit, offset int) ([]models.HistoryEntry, error)

	// Get returns the full entry, including its ordered recommendations.
	// Returns models.ErrNotFound when no entry has the given id.
	Get(id int64) (*models.HistoryEntry, error)

	// Delete removes one entry. Returns models.ErrNotFound when absent.
	Delete(id int64) error

	// Clear removes all entries. Clearing an empty store is not an error.
	Clear() error
}
