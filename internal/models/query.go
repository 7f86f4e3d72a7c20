// ABOUTME: SimilarityQuery holds the parameters of one recommendation request
// ABOUTME: Includes weight renormalization and validation rules
package models

import "strings"

// DefaultResultLimit is the number of recommendations returned when a query
// does not ask for a specific count.
const DefaultResultLimit = 10

// languageAliases maps human preference names to catalog language codes.
// "mixed" (and empty/"any") means no filter, as in the original UI.
var languageAliases = map[string]string{
	"english": "en",
	"hindi":   "hi",
}

// SimilarityQuery describes one recommendation request.
type SimilarityQuery struct {
	MovieName      string  `json:"movie_name"`
	Language       string  `json:"language,omitempty"`
	GenreWeight    float64 `json:"genre_weight"`
	OverviewWeight float64 `json:"overview_weight"`
	Limit          int     `json:"limit,omitempty"`
}

// Validate checks the query against the core validation rules. It does not
// mutate the query.
func (q *SimilarityQuery) Validate() error {
	if strings.TrimSpace(q.MovieName) == "" {
		return &ValidationError{Reason: "movie name must not be empty"}
	}
	if q.GenreWeight < 0 || q.OverviewWeight < 0 {
		return &ValidationError{Reason: "weights must not be negative"}
	}
	if q.GenreWeight+q.OverviewWeight == 0 {
		return &ValidationError{Reason: "at least one weight must be positive"}
	}
	if q.Limit < 0 {
		return &ValidationError{Reason: "limit must not be negative"}
	}
	return nil
}

// NormalizedWeights returns the genre and overview weights rescaled so their
// sum is 1, preserving their ratio. Call Validate first; a zero sum here
// panics in division.
func (q *SimilarityQuery) NormalizedWeights() (genre, overview float64) {
	sum := q.GenreWeight + q.OverviewWeight
	return q.GenreWeight / sum, q.OverviewWeight / sum
}

// LanguageCode resolves the query's language preference to a catalog language
// code. An empty string means no filter.
func (q *SimilarityQuery) LanguageCode() string {
	pref := strings.ToLower(strings.TrimSpace(q.Language))
	switch pref {
	case "", "any", "mixed":
		return ""
	}
	if code, ok := languageAliases[pref]; ok {
		return code
	}
	return pref
}

// ResultLimit returns the requested result count, falling back to the
// default when unset.
func (q *SimilarityQuery) ResultLimit() int {
	if q.Limit <= 0 {
		return DefaultResultLimit
	}
	return q.Limit
}
