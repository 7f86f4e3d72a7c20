// ABOUTME: HistoryEntry records one past recommendation request and its result
// ABOUTME: Immutable after append, destroyed only by explicit delete or clear
package models

import "time"

// HistoryEntry is the append-only record of one successful recommendation
// request. IDs are assigned by the store, monotonically increasing.
type HistoryEntry struct {
	ID              int64            `json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	Searched        Movie            `json:"searched_movie"`
	Query           SimilarityQuery  `json:"query"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Count           int              `json:"num_recommendations"`
}
