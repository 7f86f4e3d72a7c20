// ABOUTME: Statistics structures derived from the history store
// ABOUTME: Recomputed on demand, never persisted
package models

// LanguageCount is one bucket of the language preference distribution.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int64  `json:"count"`
}

// Statistics summarizes the history store. MostSearched is empty with a zero
// count when the store has no entries.
type Statistics struct {
	TotalSearches        int64           `json:"total_searches"`
	TotalRecommendations int64           `json:"total_recommendations"`
	MostSearched         string          `json:"most_searched"`
	MostSearchedCount    int64           `json:"most_searched_count"`
	LanguageDistribution []LanguageCount `json:"language_distribution,omitempty"`
}
